package token

import (
	"fmt"
	"strconv"
)

// Pos is a 1-based position in a fragment, with the text of its line.
type Pos struct {
	Line int
	Col  int
	Text string
}

func (p Pos) String() string {
	sample := p.Text
	if len(sample) > 24 {
		sample = sample[:24]
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`%s...` at line %d, col %d", sample, p.Line, p.Col)
}
