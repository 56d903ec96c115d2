package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Keys lists every config key in display order.
var Keys = []string{
	"appDir",
	"rootNamespace",
	"fileMode",
	"style",
	"provider.shape",
	"provider.classFile",
	"provider.arrayFile",
	"provider.anchor",
}

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"appDir":             "RIS_APP_DIR",
	"rootNamespace":      "RIS_ROOT_NAMESPACE",
	"fileMode":           "RIS_FILE_MODE",
	"style":              "RIS_STYLE",
	"provider.shape":     "RIS_PROVIDER_SHAPE",
	"provider.classFile": "RIS_PROVIDER_CLASS_FILE",
	"provider.arrayFile": "RIS_PROVIDER_ARRAY_FILE",
	"provider.anchor":    "RIS_PROVIDER_ANCHOR",
}

// EnvVar returns the environment variable bound to key, or "".
func EnvVar(key string) string {
	return envBindings[key]
}

// defaults returns the default value of every key.
func defaults() map[string]string {
	d := DefaultConfig()
	return map[string]string{
		"appDir":             d.AppDir,
		"rootNamespace":      d.RootNamespace,
		"fileMode":           d.FileMode,
		"style":              d.Style,
		"provider.shape":     d.Provider.Shape,
		"provider.classFile": d.Provider.ClassFile,
		"provider.arrayFile": d.Provider.ArrayFile,
		"provider.anchor":    d.Provider.Anchor,
	}
}

// Loader handles loading and merging configuration from multiple sources.
// Precedence is env > config file > default; flags are layered on top by
// Resolve.
type Loader struct {
	v    *viper.Viper
	file *viper.Viper
	fs   afero.Fs

	configFile string
	found      bool
}

// NewLoader creates a new configuration loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	file := viper.New()
	file.SetFs(fs)

	return &Loader{v: v, file: file, fs: fs}
}

// Load loads configuration from the given file path. A missing file is not
// an error; defaults and environment variables still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		expandedPath, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		l.configFile = expandedPath

		l.file.SetConfigFile(expandedPath)
		l.file.SetConfigType("yaml")

		if err := l.file.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
			}
		} else {
			l.found = true
			if err := l.v.MergeConfigMap(l.file.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging config file %s: %w", expandedPath, err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFile returns the path passed to Load after ~ expansion.
func (l *Loader) ConfigFile() string {
	return l.configFile
}

// Found reports whether Load read an existing config file.
func (l *Loader) Found() bool {
	return l.found
}
