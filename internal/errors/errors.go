// Package errors provides sentinel errors for the ivbench CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrParse indicates a malformed configuration document. Parsing aborts
	// on the first such error.
	ErrParse = errors.New("parse error")

	// ErrMissingField indicates a required key is absent.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidValue indicates a value outside its valid-options set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInconsistentConfig indicates a dependent field that disagrees with
	// its controlling field, e.g. a measure_range outside the set allowed by
	// the current measure_function.
	ErrInconsistentConfig = errors.New("inconsistent configuration")

	// ErrNotFound indicates a file or catalog model was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing reports.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path and line number (optional).
	Location string

	// Field is the dotted field path for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a parse error with details.
func NewParseError(message, location, hint string) error {
	return &DetailError{
		Type:     "parse failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrParse,
	}
}

// NewMissingFieldError creates a missing-field error naming the field.
func NewMissingFieldError(field, message, hint string) error {
	return &DetailError{
		Type:    "missing field",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrMissingField,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code. Printed marks errors the
// command layer has already reported, so main does not print them twice.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
