package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrUpload           = errors.New("upload failed")
	ErrSequenceConflict = errors.New("sequence conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
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

// UploadError reports the attachment that failed inside an upload batch.
// It matches both ErrUpload and the underlying cause via errors.Is.
type UploadError struct {
	Kind  MediaKind
	Index int
	Name  string
	Err   error
}

func (e *UploadError) Error() string {
	name := e.Name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("upload %s #%d (%s): %v", e.Kind, e.Index, name, e.Err)
}

func (e *UploadError) Unwrap() []error { return []error{ErrUpload, e.Err} }

// SequenceConflictError describes a violation of the dense 1..N position sequence
// observed on read. It is advisory: callers log it and keep serving the data.
type SequenceConflictError struct {
	Count      int
	Duplicates []int
	Missing    []int
	Unset      int
}

func (e *SequenceConflictError) Error() string {
	var parts []string
	if len(e.Duplicates) > 0 {
		parts = append(parts, fmt.Sprintf("duplicates %v", e.Duplicates))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", e.Missing))
	}
	if e.Unset > 0 {
		parts = append(parts, fmt.Sprintf("%d without position", e.Unset))
	}
	return fmt.Sprintf("sequence of %d records: %s", e.Count, strings.Join(parts, ", "))
}

func (e *SequenceConflictError) Unwrap() error { return ErrSequenceConflict }
