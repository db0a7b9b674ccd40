package lxor

import (
	"errors"
)

var (
	// ErrTypeMismatch is returned when a method receiver isn't a cipher handle.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrClosed is returned when a handle is requested from a Registry that has been closed.
	ErrClosed = errors.New("registry is closed")
)
