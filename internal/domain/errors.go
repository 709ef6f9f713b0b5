package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
	ErrModelUnavailable    = errors.New("model unavailable")
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrMalformedSuggestion = errors.New("malformed suggestion")
	ErrUpstreamTimeout     = errors.New("upstream timeout")
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// UnavailableError describes a failed call to an external collaborator.
// StatusCode carries the upstream HTTP status when one was received (0 for
// transport-level failures). The message never contains credentials.
type UnavailableError struct {
	Collaborator string // "model" or "catalog"
	StatusCode   int
	Message      string
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s unavailable (status %d): %s", e.Collaborator, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s unavailable: %s", e.Collaborator, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	if e.Collaborator == "catalog" {
		return ErrCatalogUnavailable
	}
	return ErrModelUnavailable
}

// NewModelUnavailable creates an UnavailableError for the generative model.
func NewModelUnavailable(statusCode int, message string) *UnavailableError {
	return &UnavailableError{Collaborator: "model", StatusCode: statusCode, Message: message}
}

// NewCatalogUnavailable creates an UnavailableError for the font catalog.
func NewCatalogUnavailable(statusCode int, message string) *UnavailableError {
	return &UnavailableError{Collaborator: "catalog", StatusCode: statusCode, Message: message}
}

// MalformedSuggestionError signals that model output did not decode into a
// suggestion. RawText is retained for diagnostic logging only and is never
// part of the error string, so it cannot leak into responses.
type MalformedSuggestionError struct {
	Reason  string
	RawText string
}

func (e *MalformedSuggestionError) Error() string {
	return fmt.Sprintf("malformed suggestion: %s", e.Reason)
}

func (e *MalformedSuggestionError) Unwrap() error { return ErrMalformedSuggestion }
