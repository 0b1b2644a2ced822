// Package errors provides typed errors for NumCrypt operations.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure mode of the transform: input that is
// not exactly six ASCII decimal digits. It is always recoverable by
// re-prompting the user. Use errors.Is(err, errors.ErrInvalidInput) to check.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError represents an input validation failure with field context.
// It matches ErrInvalidInput under errors.Is, so callers that only care about
// the failure kind can ignore the details.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any error in err's chain.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvalidInput checks if the error indicates rejected input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
