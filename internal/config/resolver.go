package config

import (
	"os"

	"github.com/spf13/afero"

	"github.com/ynsinc/ris/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables that are not config keys.
const (
	EnvConfig   = "RIS_CONFIG"
	EnvBasePath = "RIS_BASE_PATH"
)

// ResolvedValue is a configuration value together with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolve applies flag > env > config > default. Empty strings count as
// unset, except for an explicitly passed flag.
func resolve(key string, flag *string, env, cfg, def string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
		set    bool
	}{
		{SourceFlag, deref(flag), flag != nil},
		{SourceEnv, env, env != ""},
		{SourceConfig, cfg, cfg != ""},
		{SourceDefault, def, def != ""},
	}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Resolve reports the effective value of key using precedence:
// (1) flag, (2) RIS_* env, (3) config file, (4) built-in default.
// flag is nil when the flag was not passed.
func (l *Loader) Resolve(key string, flag *string) ResolvedValue {
	var env string
	if name := EnvVar(key); name != "" {
		env = os.Getenv(name)
	}

	var cfg string
	if l.found && l.file.IsSet(key) {
		cfg = l.file.GetString(key)
	}

	return resolve(key, flag, env, cfg, defaults()[key])
}

// ResolveAll resolves every key in Keys. flags maps keys to flag values for
// the flags the operator passed.
func (l *Loader) ResolveAll(flags map[string]*string) []ResolvedValue {
	values := make([]ResolvedValue, 0, len(Keys))
	for _, key := range Keys {
		values = append(values, l.Resolve(key, flags[key]))
	}
	return values
}

// ResolveBasePath resolves the project base path using precedence:
// (1) --base-path flag, (2) RIS_BASE_PATH env, (3) working directory.
func ResolveBasePath(flagValue string) (ResolvedValue, error) {
	var flag *string
	if flagValue != "" {
		flag = &flagValue
	}

	wd, err := os.Getwd()
	if err != nil {
		return ResolvedValue{}, err
	}

	return resolve("basePath", flag, os.Getenv(EnvBasePath), "", wd), nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
	// BasePath is the resolved project base path.
	BasePath string
	// Fs is used to probe for the project config file.
	Fs afero.Fs
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RIS_CONFIG env, (3) <base>/ris.yaml when present,
// (4) ~/.ris/config.yaml. A project file is reported as SourceConfig.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	var flag *string
	if opts.FlagValue != "" {
		flag = &opts.FlagValue
	}

	var project string
	if opts.BasePath != "" && opts.Fs != nil {
		candidate := ProjectConfigFile(opts.BasePath)
		exists, err := ConfigFileExists(opts.Fs, candidate)
		if err != nil {
			return ResolvedValue{}, err
		}
		if exists {
			project = candidate
		}
	}

	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return resolve("config", flag, os.Getenv(EnvConfig), project, paths.ConfigFile), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
