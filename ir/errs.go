package ir

import (
	"errors"
)

var (
	ErrShape = errors.New("unsupported document shape")
)
