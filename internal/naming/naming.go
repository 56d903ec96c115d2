// Package naming turns raw command option values into a validated class name.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	oerrors "github.com/ynsinc/ris/internal/errors"
)

// Kind selects the resolution rules for a generation request.
type Kind int

const (
	// Repository resolves the base name shared by an interface/repository pair.
	Repository Kind = iota

	// Service resolves a service class name.
	Service
)

// ServiceSuffix is appended to a controller identifier when no explicit
// name is given for a service.
const ServiceSuffix = "Service"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Option is a single command option. A nil Value means the option was not
// passed; a pointer to "" means it was passed with an empty value.
type Option struct {
	// Flag is the option as the operator typed it (e.g. "--model").
	Flag  string
	Value *string
}

// Set reports whether the option was passed at all.
func (o Option) Set() bool {
	return o.Value != nil
}

// String returns the value, or "" when absent.
func (o Option) String() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}

// Request holds the raw option values of one invocation.
type Request struct {
	// Identifier is the primary identifier (--model or --controller).
	Identifier Option

	// Subdir is the slash separated subdirectory (--subdir).
	Subdir Option

	// Name is the explicit class name (--name).
	Name Option
}

// Validate checks option presence rules without resolving anything.
func (r Request) Validate() error {
	if !r.Identifier.Set() && !r.Name.Set() {
		return oerrors.NewValidationError(
			fmt.Sprintf("you must provide at least %s or %s", r.Identifier.Flag, r.Name.Flag),
			"",
			fmt.Sprintf("Pass %s <Model> or %s <ClassName>.", r.Identifier.Flag, r.Name.Flag),
		)
	}

	for _, opt := range []Option{r.Identifier, r.Subdir, r.Name} {
		if opt.Set() && opt.String() == "" {
			return oerrors.NewValidationError(
				"empty values are not accepted for the provided options",
				opt.Flag,
				"Omit the option entirely instead of passing an empty value.",
			)
		}
	}

	for _, seg := range SplitSubdir(r.Subdir.String()) {
		if !identifierPattern.MatchString(seg) {
			return oerrors.NewValidationError(
				fmt.Sprintf("subdirectory segment %q is not a valid namespace segment", seg),
				r.Subdir.Flag,
				"Use letters, digits and underscores, e.g. Billing/Invoices.",
			)
		}
	}

	return nil
}

// Resolve validates req and returns the final class name for kind.
func Resolve(req Request, kind Kind) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var name string
	switch {
	case req.Name.Set():
		name = req.Name.String()
	case kind == Service:
		name = req.Identifier.String() + ServiceSuffix
	default:
		name = req.Identifier.String()
	}
	name = UpperFirst(name)

	if !identifierPattern.MatchString(name) {
		flag := req.Identifier.Flag
		if req.Name.Set() {
			flag = req.Name.Flag
		}
		return "", oerrors.NewValidationError(
			fmt.Sprintf("%q is not a valid class name", name),
			flag,
			"Class names start with a letter or underscore and contain only letters, digits and underscores.",
		)
	}

	return name, nil
}

// SplitSubdir splits a subdirectory option on "/" and "\" and drops empty
// segments, so leading, trailing and doubled separators disappear.
func SplitSubdir(subdir string) []string {
	fields := strings.FieldsFunc(subdir, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	segs := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			segs = append(segs, f)
		}
	}
	return segs
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// StrPtr returns a pointer to s, for building requests in code.
func StrPtr(s string) *string {
	return &s
}
