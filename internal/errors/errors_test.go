//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrFileSystem)
	assert.NotEqual(t, ErrValidation, ErrMissingProviderFile)
	assert.NotEqual(t, ErrMissingProviderFile, ErrAnchorNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "empty values are not accepted",
		Location: "app/Providers/RepositoryServiceProvider.php",
		Field:    "--name",
		Hint:     "Omit the option instead",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: app/Providers/RepositoryServiceProvider.php")
	assert.Contains(t, output, "Option: --name")
	assert.Contains(t, output, "empty values are not accepted")
	assert.Contains(t, output, "Hint: Omit the option instead")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("missing identifier", "--model", "Pass --model or --name")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "missing identifier", detail.Message)
	assert.Equal(t, "--model", detail.Field)
}

func TestNewFileSystemError_KeepsCause(t *testing.T) {
	err := NewFileSystemError("/tmp/x.php", fs.ErrPermission)

	assert.True(t, errors.Is(err, ErrFileSystem))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "/tmp/x.php")
}

func TestNewMissingProviderFileError(t *testing.T) {
	err := NewMissingProviderFileError("bootstrap/repositories.php")

	assert.True(t, errors.Is(err, ErrMissingProviderFile))
	assert.Contains(t, err.Error(), "bootstrap/repositories.php")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", NewValidationError("x", "", ""), ExitValidationError},
		{"wrapped validation error", fmt.Errorf("bad option: %w", ErrValidation), ExitValidationError},
		{"filesystem error", NewFileSystemError("a", fs.ErrPermission), ExitFileSystemError},
		{"missing provider file", NewMissingProviderFileError("a"), ExitNotFound},
		{"anchor not found", NewAnchorNotFoundError("a", "// x"), ExitNotFound},
		{"explicit exit error", &ExitError{Code: 7, Err: errors.New("boom")}, 7},
		{"unknown error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}
