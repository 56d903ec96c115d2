package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ynsinc/ris/internal/cmdtypes"
	"github.com/ynsinc/ris/internal/output"
	"github.com/ynsinc/ris/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show ris version information.

Displays the ris version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersion(c, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, yaml, json")

	return c
}

func runVersion(c *cobra.Command, format string) error {
	info := version.Get()
	out := c.OutOrStdout()

	switch output.ParseOutputFormat(format) {
	case output.FormatJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshaling version: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, info.String())
	}

	return nil
}
