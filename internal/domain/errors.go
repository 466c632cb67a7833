package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrNoFieldsProvided is returned by a settings patch with no recognised field.
	ErrNoFieldsProvided = errors.New("no fields provided")

	// ErrGenerationUnavailable means the generation call failed or timed out.
	ErrGenerationUnavailable = errors.New("generation unavailable")
	// ErrEmptyGeneration means the generator answered with blank text.
	ErrEmptyGeneration = errors.New("empty generation")

	// ErrStoreUnavailable wraps transport-level failures of the durable store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the rejected input fields. It matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
