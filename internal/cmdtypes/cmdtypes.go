// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/generate, internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/afero"

	"github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Fs is the filesystem every command reads and writes.
	Fs afero.Fs

	// Config is the loaded configuration (env > file > default).
	Config *config.Config

	// Loader resolves per-key provenance, including flag overrides.
	Loader *config.Loader

	BasePath   string // resolved --base-path, absolute
	ConfigPath string // resolved --config path
	ConfigFlag string // raw --config flag value (needed by config init)
	Verbose    bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitFileSystemError = oerrors.ExitFileSystemError
	ExitNotFound        = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
