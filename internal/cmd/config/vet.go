package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ynsinc/ris/internal/cmdtypes"
	"github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "vet",
		Short: "Validate the ris configuration file",
		Long: `Validate the ris configuration file and show the effective values.

The file is resolved from --config, RIS_CONFIG, ris.yaml in the base path,
then ~/.ris/config.yaml. Environment variables are applied before
validation.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "table",
		fmt.Sprintf("Output format: %s", strings.Join(output.ValidVetFormats(), ", ")))

	return c
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig, format string) error {
	path := cfg.ConfigPath

	exists, err := config.ConfigFileExists(cfg.Fs, path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err:  fmt.Errorf("config file not found: %s (run 'ris config init')", path),
		}
	}

	loader := config.NewLoader(cfg.Fs)
	loaded, err := config.ValidateFile(loader, path)
	if err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	out := c.OutOrStdout()
	switch output.ParseOutputFormat(format) {
	case output.FormatYAML:
		data, err := yaml.Marshal(loaded)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprint(out, string(data))
	case output.FormatJSON:
		data, err := json.MarshalIndent(loaded, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		t := output.NewTable("KEY", "VALUE", "SOURCE")
		for _, v := range loader.ResolveAll(nil) {
			t.Row(v.Key, v.Value, string(v.Source))
		}
		fmt.Fprintln(out, t.String())
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Config file is valid: %s", path)))
	}

	return nil
}
