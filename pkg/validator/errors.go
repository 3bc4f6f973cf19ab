package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required identifier is empty.
	ErrFieldRequired = errors.New("field is required")
)
