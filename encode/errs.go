package encode

import "errors"

var (
	// ErrNullValue is returned when a literal value is absent at render
	// time. The message names the attribute's path.
	ErrNullValue = errors.New("null value")
	// ErrUnsupportedType is returned for a value with no rendering rule.
	ErrUnsupportedType = errors.New("unsupported type")
)
