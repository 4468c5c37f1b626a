package ir

import "errors"

var (
	// ErrTypeMismatch reports a typed access against the wrong
	// active variant.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMissingKey reports a strict lookup of an absent object key.
	ErrMissingKey = errors.New("missing key")
)
