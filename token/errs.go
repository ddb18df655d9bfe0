package token

import (
	"errors"
	"fmt"
)

var (
	ErrFormat = errors.New("format error")

	ErrTab       = errors.New("tab character")
	ErrOddIndent = errors.New("odd indentation")
	ErrIndent    = errors.New("unexpected indentation")
	ErrMarker    = errors.New("value starts with comment or anchor marker")
	ErrNoColon   = errors.New("missing ':'")
	ErrEmptyKey  = errors.New("empty key")
	ErrListItem  = errors.New("list item not allowed here")
)

// FormatError reports malformed fragment input. It matches both ErrFormat
// and its specific cause under errors.Is.
type FormatError struct {
	Err  error
	Pos  *Pos
	File string
}

func NewFormatErr(err error, pos *Pos) *FormatError {
	return &FormatError{Err: err, Pos: pos}
}

func (e *FormatError) Error() string {
	prefix := ""
	if e.File != "" {
		prefix = e.File + ": "
	}
	if e.Pos == nil {
		return fmt.Sprintf("%s%s: %s", prefix, ErrFormat, e.Err)
	}
	return fmt.Sprintf("%s%s: %s %s", prefix, ErrFormat, e.Err, e.Pos)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}
