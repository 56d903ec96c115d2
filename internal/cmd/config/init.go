package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ynsinc/ris/internal/cmdtypes"
	"github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/output"
)

const configHeader = "# ris configuration\n# Values here are overridden by RIS_* environment variables and command flags.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag, globalFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new ris configuration file",
		Long: `Create a new ris configuration file with default values.

The file is created as ris.yaml in the project base path by default.
Use --global for ~/.ris/config.yaml, or --config for any other location.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, forceFlag, globalFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")
	c.Flags().BoolVar(&globalFlag, "global", false, "Write the user config file instead of the project one")

	return c
}

// initPath picks the file config init writes.
func initPath(cfg *cmdtypes.GlobalConfig, global bool) (string, error) {
	switch {
	case cfg.ConfigFlag != "":
		return config.ExpandPath(cfg.ConfigFlag)
	case global:
		paths, err := config.DefaultPaths()
		if err != nil {
			return "", err
		}
		return paths.ConfigFile, nil
	default:
		return config.ProjectConfigFile(cfg.BasePath), nil
	}
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force, global bool) error {
	path, err := initPath(cfg, global)
	if err != nil {
		return fmt.Errorf("getting config file path: %w", err)
	}

	exists, err := config.ConfigFileExists(cfg.Fs, path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
		}
	}

	if err := cfg.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitFileSystemError, Err: oerrors.NewFileSystemError(path, err)}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := afero.WriteFile(cfg.Fs, path, data, 0o644); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitFileSystemError, Err: oerrors.NewFileSystemError(path, err)}
	}

	output.Debug("wrote config file", "path", path, "overwrite", exists)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("Config file created: %s", path)))
	return nil
}
