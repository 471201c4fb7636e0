package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels shared by every layer. Transport maps them to status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	// ErrConflict covers state that forbids the operation, such as a
	// quarantined row or a transition only admins may make.
	ErrConflict = errors.New("conflict")

	ErrUnknownStatus = fmt.Errorf("unknown action status: %w", ErrValidation)
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field problem found in one input. The zero
// value is ready to collect errors with Add.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation: invalid input"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add records a problem with field.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Err returns e when it holds at least one field error, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
