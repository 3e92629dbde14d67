package value

import "errors"

var (
	// ErrTypeMismatch is returned when a payload disagrees with its
	// declared type tag, or when an array mixes element kinds.
	ErrTypeMismatch = errors.New("type mismatch")
)
