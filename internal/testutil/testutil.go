// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile creates a file with the given content under dir on the real
// filesystem and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteFs creates a file with the given content on fs.
func WriteFs(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// ReadFs returns the content of path on fs.
func ReadFs(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// CountOccurrences counts non-overlapping occurrences of substr in s.
func CountOccurrences(s, substr string) int {
	return strings.Count(s, substr)
}

// Confirmer is a scripted confirmer that records every question.
type Confirmer struct {
	Answer    bool
	Err       error
	Questions []string
}

// Confirm implements prompt.Confirmer.
func (c *Confirmer) Confirm(question string) (bool, error) {
	c.Questions = append(c.Questions, question)
	return c.Answer, c.Err
}
