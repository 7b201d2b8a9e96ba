package ir

import "errors"

var (
	ErrPath      = errors.New("path error")
	ErrPrimitive = errors.New("unsupported primitive value")
)
