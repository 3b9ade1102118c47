package config

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed indicates a CRUD-boundary input failed validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingRequiredField indicates a required environment variable is
	// empty; the process exits at startup on this error.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates a field or environment variable has an
	// invalid value.
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError wraps a CRUD-boundary input validation failure with
// enough context to return a generic 4xx without leaking internals.
type ValidationError struct {
	Component string // e.g. "keyword_rule", "webhook_endpoint", "monitored_community"
	ID        string // id of the record being validated, empty on create
	Field     string // field name (optional)
	Err       error  // underlying error
}

// Error returns formatted error message
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s '%s': field '%s': %v", e.Component, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Component, e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(component, id, field string, err error) *ValidationError {
	return &ValidationError{
		Component: component,
		ID:        id,
		Field:     field,
		Err:       err,
	}
}

// LoadError wraps an environment-configuration loading error with the
// variable that caused it.
type LoadError struct {
	Var string // environment variable name
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Var, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error.
func NewLoadError(envVar string, err error) *LoadError {
	return &LoadError{Var: envVar, Err: err}
}
