// Package generate provides the make:repository and make:service commands.
package generate

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ynsinc/ris/internal/cmdtypes"
	"github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/layout"
	"github.com/ynsinc/ris/internal/naming"
	"github.com/ynsinc/ris/internal/output"
	"github.com/ynsinc/ris/internal/pipeline"
	"github.com/ynsinc/ris/internal/prompt"
	"github.com/ynsinc/ris/internal/provider"
	"github.com/ynsinc/ris/internal/templates"
)

// commonFlags are shared by both generate commands.
type commonFlags struct {
	subdir        string
	name          string
	force         bool
	noInteraction bool
}

func (f *commonFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.subdir, "subdir", "", "Subdirectory under the artifact root, e.g. Billing/Invoices")
	c.Flags().StringVar(&f.name, "name", "", "Explicit class name")
	c.Flags().BoolVarP(&f.force, "force", "f", false, "Overwrite existing files without asking")
	c.Flags().BoolVarP(&f.noInteraction, "no-interaction", "n", false, "Never prompt; keep existing files")
	c.MarkFlagsMutuallyExclusive("force", "no-interaction")
}

// option reads a string flag as a naming.Option. An unchanged flag is absent;
// a flag passed as --name="" is present and empty.
func option(c *cobra.Command, name string) naming.Option {
	opt := naming.Option{Flag: "--" + name}
	if !c.Flags().Changed(name) {
		return opt
	}
	v, err := c.Flags().GetString(name)
	if err != nil {
		return opt
	}
	opt.Value = &v
	return opt
}

// flagPtr returns the flag value when it was passed, nil otherwise.
func flagPtr(c *cobra.Command, name string) *string {
	if !c.Flags().Changed(name) {
		return nil
	}
	v, err := c.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// settings are the resolved values a generate command needs beyond the
// request itself.
type settings struct {
	style templates.Style
	shape provider.Shape
}

// newPipeline validates the loaded configuration and builds the pipeline.
func newPipeline(c *cobra.Command, cfg *cmdtypes.GlobalConfig, s settings, flags *commonFlags) (*pipeline.Pipeline, error) {
	if cfg.Config == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: errors.New("configuration not loaded")}
	}
	if err := config.Validate(cfg.Config); err != nil {
		return nil, &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "invalid configuration",
				Message:  err.Error(),
				Location: cfg.ConfigPath,
				Hint:     "Run 'ris config vet' for details.",
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	exists, err := afero.DirExists(cfg.Fs, cfg.BasePath)
	if err != nil || !exists {
		return nil, &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "validation failed",
				Message:  fmt.Sprintf("base path %s is not a directory", cfg.BasePath),
				Location: cfg.BasePath,
				Field:    "--base-path",
				Hint:     "Run ris from the project root or pass --base-path.",
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	mode, _ := cfg.Config.Mode()
	appPath := config.Abs(cfg.BasePath, cfg.Config.AppDir)
	classFile := config.Abs(cfg.BasePath, cfg.Config.Provider.ClassFile)

	confirm := prompt.New(prompt.Options{Force: flags.force, NoInteraction: flags.noInteraction})
	if interactive, ok := confirm.(prompt.Interactive); ok {
		interactive.Stdout = nopWriteCloser{c.OutOrStdout()}
		confirm = interactive
	}

	return pipeline.New(pipeline.Deps{
		Fs:            cfg.Fs,
		Confirm:       confirm,
		Roots:         layout.NewRoots(cfg.BasePath, cfg.Config.AppDir, cfg.Config.RootNamespace),
		RootNamespace: cfg.Config.RootNamespace,
		Style:         s.style,
		Shape:         s.shape,
		FileMode:      mode,
		Provider: provider.Config{
			ClassFile: classFile,
			Namespace: layout.NamespaceOf(appPath, cfg.Config.RootNamespace, classFile),
			ArrayFile: config.Abs(cfg.BasePath, cfg.Config.Provider.ArrayFile),
			Anchor:    cfg.Config.Provider.Anchor,
			FileMode:  mode,
		},
	}), nil
}

// validationExit wraps a request validation error with its exit code.
func validationExit(err error) error {
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

// report prints one line per step, the summary and, in verbose mode, a tree
// of the touched files. A failed run returns an already printed ExitError.
func report(w io.Writer, cfg *cmdtypes.GlobalConfig, display string, result *pipeline.Result) error {
	files := make(map[string]string, len(result.Steps))
	for _, step := range result.Steps {
		rel := relPath(cfg.BasePath, step.Path)
		fmt.Fprintln(w, output.FormatStepLine(step.Name, rel, step.Status))
		if step.Err != nil {
			output.Error("step failed", "step", step.Name, "path", rel, "error", step.Err)
		}
		files[rel] = step.Status
	}

	if cfg.Verbose {
		fmt.Fprint(w, output.RenderFileTree(filepath.Base(cfg.BasePath), files))
	}

	fmt.Fprintln(w, output.FormatSummary(display, result.FailedCount()))

	if result.Failed() {
		err := result.Err()
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}
	return nil
}

func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// nopWriteCloser lets promptui write to the command's output stream.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
