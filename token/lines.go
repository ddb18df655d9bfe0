package token

import (
	"bytes"
	"iter"
	"strings"
)

const ItemMarker = "- "

// Line is a non-blank line of a fragment.
type Line struct {
	// Text is the line content after indentation and any list marker.
	Text string
	// Indent is the number of leading spaces, plus 2 for a list item.
	Indent int
	// Item is set when the line starts with a list marker.
	Item bool
	Pos  *Pos
}

// Lines returns the non-blank lines of d. The sequence stops after the
// first error, which is a *FormatError. Iterating again rescans d.
func Lines(d []byte) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		lineNo := 0
		rest := d
		for len(rest) > 0 {
			var raw []byte
			if i := bytes.IndexByte(rest, '\n'); i >= 0 {
				raw, rest = rest[:i], rest[i+1:]
			} else {
				raw, rest = rest, nil
			}
			lineNo++
			ln, ok, err := scanLine(string(raw), lineNo)
			if err != nil {
				yield(Line{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(ln, nil) {
				return
			}
		}
	}
}

func scanLine(raw string, lineNo int) (Line, bool, error) {
	raw = strings.TrimSuffix(raw, "\r")
	if i := strings.IndexByte(raw, '\t'); i >= 0 {
		return Line{}, false, NewFormatErr(ErrTab, &Pos{Line: lineNo, Col: i + 1, Text: raw})
	}
	text := strings.TrimLeft(raw, " ")
	indent := len(raw) - len(text)
	text = strings.TrimRight(text, " ")
	if text == "" {
		return Line{}, false, nil
	}
	pos := &Pos{Line: lineNo, Col: indent + 1, Text: raw}
	if indent%2 != 0 {
		return Line{}, false, NewFormatErr(ErrOddIndent, pos)
	}
	ln := Line{Text: text, Indent: indent, Pos: pos}
	if text == strings.TrimSpace(ItemMarker) || strings.HasPrefix(text, ItemMarker) {
		ln.Item = true
		ln.Indent += 2
		ln.Text = strings.TrimLeft(text[1:], " ")
	}
	return ln, true, nil
}
