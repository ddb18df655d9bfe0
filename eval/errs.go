package eval

import "errors"

var (
	ErrSubst = errors.New("bad substitution")
	ErrExpr  = errors.New("expression error")
)
