package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the value is not a struct or a
	// pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidRequest wraps every field-level validation failure.
	ErrInvalidRequest = errors.New("invalid request")
)
