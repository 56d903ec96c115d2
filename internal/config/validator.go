package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/provider"
	"github.com/ynsinc/ris/internal/templates"
)

// namespaceRegex validates a backslash separated PHP namespace.
var namespaceRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap lets errors.Is match oerrors.ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks every field of cfg and returns all problems at once.
func Validate(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case strings.TrimSpace(cfg.AppDir) == "":
		add("appDir", "must not be empty")
	case filepath.IsAbs(cfg.AppDir):
		add("appDir", "must be relative to the base path")
	}

	if !namespaceRegex.MatchString(cfg.RootNamespace) {
		add("rootNamespace", "must be a valid namespace such as App or Acme\\Shop, got %q", cfg.RootNamespace)
	}

	if _, err := ParseFileMode(cfg.FileMode); err != nil {
		add("fileMode", "%v", err)
	}

	if _, err := templates.ParseStyle(cfg.Style); err != nil {
		add("style", "%v", err)
	}

	if _, err := provider.ParseShape(cfg.Provider.Shape); err != nil {
		add("provider.shape", "%v", err)
	}

	for field, path := range map[string]string{
		"provider.classFile": cfg.Provider.ClassFile,
		"provider.arrayFile": cfg.Provider.ArrayFile,
	} {
		if !strings.HasSuffix(path, ".php") {
			add(field, "must be a .php file, got %q", path)
		}
	}

	switch anchor := cfg.Provider.Anchor; {
	case strings.TrimSpace(anchor) == "":
		add("provider.anchor", "must not be empty")
	case strings.ContainsAny(anchor, "\r\n"):
		add("provider.anchor", "must be a single line")
	}

	if len(errs) > 0 {
		sortErrors(errs)
		return errs
	}

	return nil
}

// sortErrors orders errs by Keys so output is stable.
func sortErrors(errs ValidationErrors) {
	rank := make(map[string]int, len(Keys))
	for i, k := range Keys {
		rank[k] = i
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return rank[errs[i].Field] < rank[errs[j].Field]
	})
}

// ValidateFile loads the configuration file at path and validates it.
func ValidateFile(l *Loader, path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	return cfg, Validate(cfg)
}
