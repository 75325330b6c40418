package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrValidation        = errors.New("validation error")
	ErrRejected          = errors.New("line rejected")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrStorage           = errors.New("storage unavailable")
	ErrSchema            = errors.New("storage schema invalid")
	ErrInternal          = errors.New("internal invariant violated")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// Rhyme schemes report their problems through it before any store access.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ResourceExhaustedError reports that no rhyme group in storage can supply
// enough lines for a scheme label.
type ResourceExhaustedError struct {
	Label     string
	Required  int
	Syllables []int
}

func (e *ResourceExhaustedError) Error() string {
	parts := make([]string, len(e.Syllables))
	for i, s := range e.Syllables {
		parts[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("resource exhausted: label %q needs %d lines with syllables {%s}",
		e.Label, e.Required, strings.Join(parts, ","))
}

func (e *ResourceExhaustedError) Unwrap() error { return ErrResourceExhausted }
