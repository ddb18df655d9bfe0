package k8sagent

import "errors"

var (
	ErrPatch   = errors.New("json patch")
	ErrImage   = errors.New("invalid image")
	ErrInvalid = errors.New("invalid document")
)
