// Package errors provides sentinel errors and structured error types for the
// ris CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DetailError captures structured, operator-facing error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the command option involved (optional).
	Field string

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
		b.WriteString("  Option: ")
		b.WriteString(e.Field)
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

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewFileSystemError creates a filesystem error for path. The cause is kept
// reachable through errors.Is alongside ErrFileSystem.
func NewFileSystemError(path string, cause error) error {
	msg := "filesystem operation failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &DetailError{
		Type:     "filesystem error",
		Message:  msg,
		Location: path,
		Cause:    errors.Join(ErrFileSystem, cause),
	}
}

// NewMissingProviderFileError reports an absent provider file that the
// framework is expected to have scaffolded.
func NewMissingProviderFileError(path string) error {
	return &DetailError{
		Type:     "provider file not found",
		Message:  "the provider registration file does not exist and will not be created",
		Location: path,
		Hint:     "Create the file with a `return [];` array, or use --provider-shape method.",
		Cause:    ErrMissingProviderFile,
	}
}

// NewAnchorNotFoundError reports a provider file without an insertion point.
func NewAnchorNotFoundError(path, anchor string) error {
	return &DetailError{
		Type:     "provider insertion point not found",
		Message:  fmt.Sprintf("could not find %q in the provider file", anchor),
		Location: path,
		Hint:     "Restore the marker, or add the binding manually.",
		Cause:    ErrAnchorNotFound,
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed reports whether the command layer already showed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrFileSystem):
		return ExitFileSystemError
	case errors.Is(err, ErrMissingProviderFile), errors.Is(err, ErrAnchorNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
