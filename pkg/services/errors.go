package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service layer. The API layer maps these to
// the stable error codes of the public surface.
var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrUnauthorized is returned when a caller has neither credentials nor
	// an anonymous id.
	ErrUnauthorized = errors.New("caller identity required")

	// ErrForbidden is returned on cross-owner access to a task.
	ErrForbidden = errors.New("access denied")

	// ErrConflict is returned when the owner already has an in-flight task.
	ErrConflict = errors.New("owner already has an active task")

	// ErrTrialExhausted is returned when the trial was already consumed.
	ErrTrialExhausted = errors.New("trial already used")

	// ErrDurationExceeded is returned when a trial input exceeds the
	// duration cap.
	ErrDurationExceeded = errors.New("media exceeds trial duration limit")

	// ErrInsufficientBalance is returned on a paid request with zero balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyProcessed is returned for duplicate webhook events.
	ErrAlreadyProcessed = errors.New("event already processed")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
