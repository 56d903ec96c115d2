package pipeline

import (
	"errors"
	"os"

	"github.com/spf13/afero"

	"github.com/ynsinc/ris/internal/layout"
	"github.com/ynsinc/ris/internal/prompt"
	"github.com/ynsinc/ris/internal/provider"
	"github.com/ynsinc/ris/internal/templates"
)

// Step names, in the order they can appear in a Result.
const (
	StepBaseInterface  = "base-interface"
	StepBaseRepository = "base-repository"
	StepInterface      = "interface"
	StepRepository     = "repository"
	StepService        = "service"
	StepProvider       = "provider"
)

// Deps are the collaborators and settings of a Pipeline.
type Deps struct {
	// Fs is the filesystem every artifact and provider file lives on.
	Fs afero.Fs

	// Confirm is asked before an existing artifact is overwritten.
	Confirm prompt.Confirmer

	// Roots are the artifact base locations.
	Roots layout.Roots

	// RootNamespace is the application namespace, e.g. "App".
	RootNamespace string

	// Style selects the interface/repository templates.
	Style templates.Style

	// Shape selects the provider file shape.
	Shape provider.Shape

	// Provider locates the provider files.
	Provider provider.Config

	// FileMode is applied to written artifacts. Zero means 0755.
	FileMode os.FileMode
}

// Step is the outcome of one pipeline action.
type Step struct {
	// Name is one of the Step* constants.
	Name string

	// Path is the file the step wrote, kept or patched.
	Path string

	// Status is one of the output.Status* values.
	Status string

	// Err is set when Status is failed.
	Err error
}

// Failed reports whether the step failed.
func (s Step) Failed() bool {
	return s.Err != nil
}

// Result collects the steps of one invocation.
type Result struct {
	// ClassName is the resolved class name. For repositories it is the shared
	// stem ("Order"), for services the full class name ("InvoiceService").
	ClassName string

	Steps []Step

	// ProviderSynthesized reports that the provider class file was created
	// during this run.
	ProviderSynthesized bool
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	return r.FailedCount() > 0
}

// FailedCount returns the number of failed steps.
func (r *Result) FailedCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Err joins the errors of all failed steps, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for _, s := range r.Steps {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errors.Join(errs...)
}

// Step returns the step called name.
func (r *Result) Step(name string) (Step, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}
