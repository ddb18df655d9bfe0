package eval

import (
	"fmt"
	"strings"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
)

// Subst is an ordered mapping from literal tokens to replacements. The
// zero value and nil are empty mappings.
type Subst struct {
	pairs []Pair
}

type Pair struct {
	Token string
	Value string
}

func NewSubst(pairs ...Pair) *Subst {
	s := &Subst{}
	for _, p := range pairs {
		s.Add(p.Token, p.Value)
	}
	return s
}

// ParseSubst builds a Subst from TOKEN=value arguments.
func ParseSubst(args []string) (*Subst, error) {
	s := &Subst{}
	for _, a := range args {
		tok, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: argument %q expected TOKEN=value", ErrSubst, a)
		}
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token in %q", ErrSubst, a)
		}
		s.Add(tok, val)
	}
	return s, nil
}

// Add appends a mapping entry. A token added twice keeps its first
// position and takes the later value. Empty tokens are ignored.
func (s *Subst) Add(token, value string) {
	if token == "" {
		return
	}
	for i := range s.pairs {
		if s.pairs[i].Token == token {
			s.pairs[i].Value = value
			return
		}
	}
	s.pairs = append(s.pairs, Pair{Token: token, Value: value})
}

func (s *Subst) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

func (s *Subst) Pairs() []Pair {
	if s == nil {
		return nil
	}
	return append([]Pair(nil), s.pairs...)
}

// Apply replaces every occurrence of each token in v. Tokens are applied
// one at a time in mapping order, and replacement text is not scanned
// again.
func (s *Subst) Apply(v string) string {
	if s.Len() == 0 {
		return v
	}
	segs := []segment{{text: v}}
	for _, p := range s.pairs {
		segs = p.split(segs)
	}
	b := strings.Builder{}
	for _, sg := range segs {
		b.WriteString(sg.text)
	}
	res := b.String()
	if debug.Subst() && res != v {
		debug.Logf("subst %q -> %q\n", v, res)
	}
	return res
}

// segment is a piece of the input. Done segments hold replacement text.
type segment struct {
	text string
	done bool
}

func (p Pair) split(segs []segment) []segment {
	res := make([]segment, 0, len(segs))
	for _, sg := range segs {
		if sg.done || !strings.Contains(sg.text, p.Token) {
			res = append(res, sg)
			continue
		}
		parts := strings.Split(sg.text, p.Token)
		for i, part := range parts {
			if i > 0 {
				res = append(res, segment{text: p.Value, done: true})
			}
			if part != "" {
				res = append(res, segment{text: part})
			}
		}
	}
	return res
}
