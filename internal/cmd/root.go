package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ynsinc/ris/internal/cmd/config"
	"github.com/ynsinc/ris/internal/cmd/generate"
	"github.com/ynsinc/ris/internal/cmdtypes"
	rconfig "github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/output"
	"github.com/ynsinc/ris/internal/version"
)

// rootFlags holds the raw global flag values of one root command.
type rootFlags struct {
	config     string
	basePath   string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the ris CLI on the OS filesystem.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithFs(afero.NewOsFs())
}

// NewRootCmdWithFs creates the root command operating on fs.
func NewRootCmdWithFs(fs afero.Fs) *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{Fs: fs}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "ris",
		Short: "Repository, interface and service scaffolder",
		Long: `ris generates repository-pattern boilerplate for Laravel-style PHP projects.

It provides commands to:
  - Generate a repository interface and implementation, and bind them in the
    service container (make:repository)
  - Generate a service class (make:service)
  - Create and validate the ris configuration (config init, config vet)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: RIS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.basePath, "base-path", "", "Project root directory (env: RIS_BASE_PATH, default: working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(generate.NewRepositoryCmd(cfg))
	rootCmd.AddCommand(generate.NewServiceCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging, resolves the base and config paths and
// loads configuration.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("ris started", "version", info.Version, "go", info.GoVersion)

	base, err := rconfig.ResolveBasePath(flags.basePath)
	if err != nil {
		return fmt.Errorf("resolving base path: %w", err)
	}
	absBase, err := filepath.Abs(base.Value)
	if err != nil {
		return fmt.Errorf("resolving base path %s: %w", base.Value, err)
	}
	base.Value = absBase

	configPath, err := rconfig.ResolveConfigPath(rconfig.ResolveConfigPathOptions{
		FlagValue: flags.config,
		BasePath:  absBase,
		Fs:        cfg.Fs,
	})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loader := rconfig.NewLoader(cfg.Fs)
	loaded, err := loader.Load(configPath.Value)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	rconfig.LogResolvedValues(base, configPath)
	output.Debug("config loaded", "file", loader.ConfigFile(), "found", loader.Found())

	cfg.Config = loaded
	cfg.Loader = loader
	cfg.BasePath = absBase
	cfg.ConfigPath = loader.ConfigFile()
	cfg.ConfigFlag = flags.config
	cfg.Verbose = flags.verbose

	return nil
}
