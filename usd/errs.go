package usd

import (
	"errors"

	"github.com/signadot/usda/value"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrAlreadyAttached   = errors.New("already attached")
	ErrCycle             = errors.New("cycle")

	ErrTypeMismatch = value.ErrTypeMismatch
)
