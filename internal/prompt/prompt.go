// Package prompt provides the operator confirmation used before overwriting
// files.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/ynsinc/ris/internal/output"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// Always answers every question with the same value without blocking.
type Always bool

// Confirm implements Confirmer.
func (a Always) Confirm(question string) (bool, error) {
	output.Debug("confirmation answered without prompting", "question", question, "answer", bool(a))
	return bool(a), nil
}

// Interactive prompts on a terminal with promptui.
type Interactive struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Confirm implements Confirmer. Answering anything but "y" declines.
func (i Interactive) Confirm(question string) (bool, error) {
	p := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Stdin:     i.Stdin,
		Stdout:    i.Stdout,
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Options selects a Confirmer for a command run.
type Options struct {
	// Force overwrites without asking.
	Force bool

	// NoInteraction declines every overwrite without asking.
	NoInteraction bool
}

// New returns the Confirmer for opts. Without --force or --no-interaction it
// prompts when stdin is a terminal and declines otherwise.
func New(opts Options) Confirmer {
	switch {
	case opts.Force:
		return Always(true)
	case opts.NoInteraction:
		return Always(false)
	case !IsTerminal(os.Stdin):
		output.Debug("stdin is not a terminal, existing files will be kept")
		return Always(false)
	default:
		return Interactive{Stdin: os.Stdin, Stdout: os.Stdout}
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
