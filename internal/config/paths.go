package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectConfigName is the per-project config file looked up in the base path.
const ProjectConfigName = "ris.yaml"

// Paths contains standard filesystem paths for ris.
type Paths struct {
	// ConfigFile is the path to the user config file (~/.ris/config.yaml).
	ConfigFile string

	// HomeDir is the ris home directory (~/.ris).
	HomeDir string
}

// DefaultPaths returns the default paths for ris.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	risHome := filepath.Join(homeDir, ".ris")

	return &Paths{
		ConfigFile: filepath.Join(risHome, "config.yaml"),
		HomeDir:    risHome,
	}, nil
}

// ProjectConfigFile returns the project config path for basePath.
func ProjectConfigFile(basePath string) string {
	return filepath.Join(basePath, ProjectConfigName)
}

// ConfigFileExists checks if the config file exists on fs.
func ConfigFileExists(fs afero.Fs, configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	info, err := fs.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return !info.IsDir(), nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

// Abs resolves p against basePath unless it is already absolute.
func Abs(basePath, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(basePath, p)
}
