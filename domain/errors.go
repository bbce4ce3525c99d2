package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested customer does not exist
var ErrNotFound = errors.New("customer not found")

// ValidationError reports registration input rejected before any state was
// written. Collaborator failures are never converted into validation errors.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a validation failure
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
