package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller is not permitted to access the resource.
var ErrForbidden = errors.New("access denied")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// NewValidationError creates a client-facing validation error carrying the
// ErrValidation sentinel so callers can match it with errors.Is.
func NewValidationError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrValidation)
}
