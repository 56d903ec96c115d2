// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ProviderConfig locates the DI provider files of the target project.
type ProviderConfig struct {
	// Shape selects the provider file shape: auto, method or array.
	// Env: RIS_PROVIDER_SHAPE, Default: auto
	Shape string `mapstructure:"shape" yaml:"shape" json:"shape"`

	// ClassFile is the method-body provider class, relative to the base path.
	// Env: RIS_PROVIDER_CLASS_FILE
	ClassFile string `mapstructure:"classFile" yaml:"classFile" json:"classFile"`

	// ArrayFile is the array-literal bindings file, relative to the base path.
	// Env: RIS_PROVIDER_ARRAY_FILE
	ArrayFile string `mapstructure:"arrayFile" yaml:"arrayFile" json:"arrayFile"`

	// Anchor is the marker line bindings are inserted after.
	// Env: RIS_PROVIDER_ANCHOR
	Anchor string `mapstructure:"anchor" yaml:"anchor" json:"anchor"`
}

// Config represents the ris configuration.
// Loaded from ris.yaml in the project or ~/.ris/config.yaml.
type Config struct {
	// AppDir is the application source directory, relative to the base path.
	// Env: RIS_APP_DIR, Default: app
	AppDir string `mapstructure:"appDir" yaml:"appDir" json:"appDir"`

	// RootNamespace is the namespace mapped to AppDir.
	// Env: RIS_ROOT_NAMESPACE, Default: App
	RootNamespace string `mapstructure:"rootNamespace" yaml:"rootNamespace" json:"rootNamespace"`

	// FileMode is the octal permission set on generated files.
	// Env: RIS_FILE_MODE, Default: 0755
	FileMode string `mapstructure:"fileMode" yaml:"fileMode" json:"fileMode"`

	// Style selects the template style: standalone or base.
	// Env: RIS_STYLE, Default: standalone
	Style string `mapstructure:"style" yaml:"style" json:"style"`

	// Provider contains the binding registration settings.
	Provider ProviderConfig `mapstructure:"provider" yaml:"provider" json:"provider"`
}

// Default values.
const (
	DefaultAppDir            = "app"
	DefaultRootNamespace     = "App"
	DefaultFileMode          = "0755"
	DefaultStyle             = "standalone"
	DefaultProviderShape     = "auto"
	DefaultProviderClassFile = "app/Providers/RepositoryServiceProvider.php"
	DefaultProviderArrayFile = "bootstrap/repositories.php"
	DefaultProviderAnchor    = "// @ris:bindings"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `ris config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		AppDir:        DefaultAppDir,
		RootNamespace: DefaultRootNamespace,
		FileMode:      DefaultFileMode,
		Style:         DefaultStyle,
		Provider: ProviderConfig{
			Shape:     DefaultProviderShape,
			ClassFile: DefaultProviderClassFile,
			ArrayFile: DefaultProviderArrayFile,
			Anchor:    DefaultProviderAnchor,
		},
	}
}

// ParseFileMode parses an octal permission string such as "0755" or "644".
func ParseFileMode(s string) (os.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", s, err)
	}
	if n == 0 || n > 0o777 {
		return 0, fmt.Errorf("invalid file mode %q: must be between 0001 and 0777", s)
	}
	return os.FileMode(n), nil
}

// Mode returns the parsed FileMode.
func (c *Config) Mode() (os.FileMode, error) {
	return ParseFileMode(c.FileMode)
}
