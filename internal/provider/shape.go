// Package provider registers interface/implementation pairs with the host
// framework's DI container by patching a provider registration file.
//
// Two file shapes are supported, one patch routine each:
//
//   - ShapeMethodBody: a provider class whose register() method contains an
//     anchor comment. Bindings are inserted on the line after the anchor. The
//     file is synthesized when missing.
//   - ShapeArrayLiteral: a flat file returning an array of class pairs.
//     Bindings are inserted right after the opening token. The file is never
//     synthesized.
//
// The patcher does not parse PHP. A binding is considered present when its
// canonical text occurs verbatim in the file, which holds because the text is
// always rendered the same way for a given pair.
package provider

import (
	"fmt"
	"strings"
)

// Shape identifies a provider file shape.
type Shape string

const (
	// ShapeAuto selects ShapeArrayLiteral when the array file exists and
	// ShapeMethodBody otherwise. It is a selection mode, never patched
	// directly.
	ShapeAuto Shape = "auto"

	// ShapeMethodBody is a provider class with an anchored register() body.
	ShapeMethodBody Shape = "method"

	// ShapeArrayLiteral is a flat `return [...]` file of class pairs.
	ShapeArrayLiteral Shape = "array"
)

// ValidShapes returns all valid shape names.
func ValidShapes() []string {
	return []string{string(ShapeAuto), string(ShapeMethodBody), string(ShapeArrayLiteral)}
}

// ParseShape converts a shape name, defaulting "" to ShapeAuto.
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case "", ShapeAuto:
		return ShapeAuto, nil
	case ShapeMethodBody:
		return ShapeMethodBody, nil
	case ShapeArrayLiteral:
		return ShapeArrayLiteral, nil
	default:
		return "", fmt.Errorf("unknown provider shape %q (valid: %s)", s, strings.Join(ValidShapes(), ", "))
	}
}

// Pair is an interface and its implementation, both fully qualified.
type Pair struct {
	Interface      string
	Implementation string
}

// Binding is the canonical registration text for one pair in one shape.
type Binding struct {
	Shape Shape
	Text  string
}

// BindingFor renders the canonical binding text for pair.
func BindingFor(shape Shape, pair Pair) (Binding, error) {
	iface := classRef(pair.Interface)
	impl := classRef(pair.Implementation)

	switch shape {
	case ShapeMethodBody:
		return Binding{
			Shape: shape,
			Text:  fmt.Sprintf("$this->app->bind(%s, %s);", iface, impl),
		}, nil
	case ShapeArrayLiteral:
		return Binding{
			Shape: shape,
			Text:  fmt.Sprintf("[%s, %s],", iface, impl),
		}, nil
	default:
		return Binding{}, fmt.Errorf("no binding format for provider shape %q", shape)
	}
}

// classRef renders a leading-backslash ::class reference.
func classRef(fqcn string) string {
	return `\` + strings.TrimLeft(fqcn, `\`) + "::class"
}
