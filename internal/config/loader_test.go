package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every RIS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvBasePath, "")
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs())
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		content := `
appDir: src
rootNamespace: Acme
style: base
provider:
  shape: array
  arrayFile: bootstrap/bindings.php
`
		require.NoError(t, afero.WriteFile(fs, "/proj/ris.yaml", []byte(content), 0o644))

		loader := NewLoader(fs)
		cfg, err := loader.Load("/proj/ris.yaml")

		require.NoError(t, err)
		assert.True(t, loader.Found())
		assert.Equal(t, "/proj/ris.yaml", loader.ConfigFile())
		assert.Equal(t, "src", cfg.AppDir)
		assert.Equal(t, "Acme", cfg.RootNamespace)
		assert.Equal(t, "base", cfg.Style)
		assert.Equal(t, "array", cfg.Provider.Shape)
		assert.Equal(t, "bootstrap/bindings.php", cfg.Provider.ArrayFile)

		// Keys missing from the file keep their defaults.
		assert.Equal(t, "0755", cfg.FileMode)
		assert.Equal(t, DefaultProviderClassFile, cfg.Provider.ClassFile)
		assert.Equal(t, DefaultProviderAnchor, cfg.Provider.Anchor)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		clearEnv(t)
		loader := NewLoader(afero.NewMemMapFs())
		cfg, err := loader.Load("/proj/nonexistent.yaml")

		require.NoError(t, err)
		assert.False(t, loader.Found())
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("returns defaults without a path", func(t *testing.T) {
		clearEnv(t)
		cfg, err := NewLoader(afero.NewMemMapFs()).Load("")

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RIS_STYLE", "standalone")
		t.Setenv("RIS_PROVIDER_SHAPE", "method")

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/proj/ris.yaml", []byte("style: base\nprovider:\n  shape: array\n"), 0o644))

		cfg, err := NewLoader(fs).Load("/proj/ris.yaml")
		require.NoError(t, err)
		assert.Equal(t, "standalone", cfg.Style)
		assert.Equal(t, "method", cfg.Provider.Shape)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/proj/ris.yaml", []byte("style: [unclosed\n"), 0o644))

		_, err := NewLoader(fs).Load("/proj/ris.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}
