// Package templates renders the fixed PHP source templates for generated
// artifacts. Rendering is pure: the same Params always yield the same text.
package templates

import (
	"fmt"
	"strings"
)

// Kind identifies a generated artifact.
type Kind string

const (
	KindInterface      Kind = "interface"
	KindRepository     Kind = "repository"
	KindService        Kind = "service"
	KindBaseInterface  Kind = "base-interface"
	KindBaseRepository Kind = "base-repository"
	KindProvider       Kind = "provider"
)

// Style selects the interface/repository template variant.
type Style string

const (
	// Standalone interfaces declare the CRUD capability set themselves and
	// repositories carry stub bodies.
	Standalone Style = "standalone"

	// Base interfaces extend BaseInterface and repositories extend
	// BaseRepository, which are generated once per project.
	Base Style = "base"
)

// ValidStyles returns all valid style names.
func ValidStyles() []string {
	return []string{string(Standalone), string(Base)}
}

// ParseStyle converts a style name, defaulting "" to Standalone.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case "", Standalone:
		return Standalone, nil
	case Base:
		return Base, nil
	default:
		return "", fmt.Errorf("unknown style %q (valid: %s)", s, strings.Join(ValidStyles(), ", "))
	}
}

// Params is the immutable input of every render function.
type Params struct {
	// ClassName is the resolved class name. For interfaces and repositories
	// it is the shared stem ("Order"); for services the full name.
	ClassName string

	// Namespace is the namespace of the rendered file.
	Namespace string

	// InterfaceNamespace is the namespace holding the matching interface.
	InterfaceNamespace string

	// RootNamespace is the application namespace, usually "App".
	RootNamespace string

	// Style selects the interface/repository variant.
	Style Style

	// Anchor is the provider insertion marker (provider file only).
	Anchor string
}

// Base reports whether the base-class variant is selected.
func (p Params) Base() bool {
	return p.Style == Base
}

// Artifact is rendered text bound for one file.
type Artifact struct {
	Kind    Kind
	Path    string
	Content string
}
