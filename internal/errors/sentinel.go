package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a missing or empty command option, or an
	// option value that cannot form a valid class name or namespace.
	ErrValidation = errors.New("validation error")

	// ErrFileSystem indicates a path could not be created, read or written.
	ErrFileSystem = errors.New("filesystem error")

	// ErrMissingProviderFile indicates the provider file is expected to exist
	// and must not be synthesized.
	ErrMissingProviderFile = errors.New("provider file not found")

	// ErrAnchorNotFound indicates the provider file exists but has no
	// insertion point for a binding.
	ErrAnchorNotFound = errors.New("insertion point not found")
)

// Exit codes for the ris CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates command options were rejected.
	ExitValidationError = 2

	// ExitFileSystemError indicates a file could not be written or read.
	ExitFileSystemError = 4

	// ExitNotFound indicates the provider file, or its insertion point, was not found.
	ExitNotFound = 5
)
