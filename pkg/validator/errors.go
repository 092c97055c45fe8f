package validator

import (
	"errors"
	"fmt"
)

// Error kinds reported by rules. A ValidationError matches its kind with errors.Is.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a field has no value at all.
	ErrFieldRequired = errors.New("field is required")

	// ErrTypeMismatch is returned when a value has the wrong type for its rule.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = fmt.Errorf("%w: value out of range", ErrInvalidValue)

	// ErrNotAllowed is returned when a value is not one of the allowed options.
	ErrNotAllowed = fmt.Errorf("%w: value not allowed", ErrInvalidValue)
)
