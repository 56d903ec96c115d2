// Package writer writes rendered artifacts to disk, asking before it
// overwrites anything.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/output"
	"github.com/ynsinc/ris/internal/prompt"
)

// DefaultFileMode is applied to every written file.
const DefaultFileMode os.FileMode = 0o755

// dirMode is used for parent directories created on demand.
const dirMode os.FileMode = 0o755

// Outcome is the result of one write.
type Outcome string

const (
	Created     Outcome = output.StatusCreated
	Overwritten Outcome = output.StatusOverwritten
	Skipped     Outcome = output.StatusSkipped
)

// Writer is the idempotent artifact writer.
type Writer struct {
	fs      afero.Fs
	confirm prompt.Confirmer
	mode    os.FileMode
}

// Option configures a Writer.
type Option func(*Writer)

// WithFileMode sets the mode applied after every write.
func WithFileMode(mode os.FileMode) Option {
	return func(w *Writer) {
		w.mode = mode
	}
}

// New creates a Writer on fs that consults confirm before overwriting.
func New(fs afero.Fs, confirm prompt.Confirmer, opts ...Option) *Writer {
	w := &Writer{
		fs:      fs,
		confirm: confirm,
		mode:    DefaultFileMode,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write writes content plus exactly one trailing newline to path. An existing
// file is only replaced after the operator confirms.
func (w *Writer) Write(path, content string) (Outcome, error) {
	exists, err := w.exists(path)
	if err != nil {
		return "", err
	}

	outcome := Created
	if exists {
		question := fmt.Sprintf("The file %s already exists. Do you want to overwrite it?", path)
		ok, err := w.confirm.Confirm(question)
		if err != nil {
			return "", fmt.Errorf("confirming overwrite of %s: %w", path, err)
		}
		if !ok {
			output.Debug("keeping existing file", "path", path)
			return Skipped, nil
		}
		outcome = Overwritten
	}

	if err := w.put(path, content); err != nil {
		return "", err
	}
	return outcome, nil
}

// WriteIfMissing writes path only when it does not exist yet. It never
// prompts.
func (w *Writer) WriteIfMissing(path, content string) (Outcome, error) {
	exists, err := w.exists(path)
	if err != nil {
		return "", err
	}
	if exists {
		return Skipped, nil
	}
	if err := w.put(path, content); err != nil {
		return "", err
	}
	return Created, nil
}

func (w *Writer) exists(path string) (bool, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, oerrors.NewFileSystemError(path, err)
	}
	if info.IsDir() {
		return false, oerrors.NewFileSystemError(path, fmt.Errorf("%s is a directory", path))
	}
	return true, nil
}

func (w *Writer) put(path, content string) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return oerrors.NewFileSystemError(path, err)
	}

	data := []byte(strings.TrimRight(content, "\n") + "\n")
	if err := afero.WriteFile(w.fs, path, data, w.mode); err != nil {
		return oerrors.NewFileSystemError(path, err)
	}
	if err := w.fs.Chmod(path, w.mode); err != nil {
		return oerrors.NewFileSystemError(path, err)
	}

	output.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}
