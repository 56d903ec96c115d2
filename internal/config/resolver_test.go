package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedLoader(t *testing.T, content string) *Loader {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/ris.yaml", []byte(content), 0o644))
	l := NewLoader(fs)
	_, err := l.Load("/proj/ris.yaml")
	require.NoError(t, err)
	return l
}

func TestResolve_FlagPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("RIS_STYLE", "standalone")
	l := loadedLoader(t, "style: base\n")

	flag := "base"
	result := l.Resolve("style", &flag)

	assert.Equal(t, "base", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "standalone", result.Shadowed[SourceEnv])
	assert.Equal(t, "base", result.Shadowed[SourceConfig])
	assert.Equal(t, "standalone", result.Shadowed[SourceDefault])
}

func TestResolve_EnvPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("RIS_PROVIDER_SHAPE", "method")
	l := loadedLoader(t, "provider:\n  shape: array\n")

	result := l.Resolve("provider.shape", nil)

	assert.Equal(t, "method", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "array", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolve_ConfigFallback(t *testing.T) {
	clearEnv(t)
	l := loadedLoader(t, "rootNamespace: Acme\n")

	result := l.Resolve("rootNamespace", nil)

	assert.Equal(t, "Acme", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Equal(t, map[ConfigSource]string{SourceDefault: "App"}, result.Shadowed)
}

func TestResolve_Default(t *testing.T) {
	clearEnv(t)
	l := loadedLoader(t, "rootNamespace: Acme\n")

	result := l.Resolve("appDir", nil)

	assert.Equal(t, "app", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolve_EmptyFlagIsStillAFlag(t *testing.T) {
	clearEnv(t)
	l := NewLoader(afero.NewMemMapFs())

	empty := ""
	result := l.Resolve("style", &empty)

	assert.Equal(t, "", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
}

func TestResolveAll(t *testing.T) {
	clearEnv(t)
	l := loadedLoader(t, "style: base\n")

	values := l.ResolveAll(nil)
	require.Len(t, values, len(Keys))
	for i, v := range values {
		assert.Equal(t, Keys[i], v.Key)
		assert.NotEmpty(t, v.Source)
	}
	assert.Equal(t, SourceConfig, values[3].Source)
}

func TestResolveBasePath(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	result, err := ResolveBasePath("")
	require.NoError(t, err)
	assert.Equal(t, wd, result.Value)
	assert.Equal(t, SourceDefault, result.Source)

	t.Setenv(EnvBasePath, "/env/proj")
	result, err = ResolveBasePath("")
	require.NoError(t, err)
	assert.Equal(t, "/env/proj", result.Value)
	assert.Equal(t, SourceEnv, result.Source)

	result, err = ResolveBasePath("/flag/proj")
	require.NoError(t, err)
	assert.Equal(t, "/flag/proj", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/proj", result.Shadowed[SourceEnv])
}

func TestResolveConfigPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/dev")
	userConfig := filepath.Join("/home/dev", ".ris", "config.yaml")

	fs := afero.NewMemMapFs()
	opts := ResolveConfigPathOptions{BasePath: "/proj", Fs: fs}

	t.Run("user config by default", func(t *testing.T) {
		result, err := ResolveConfigPath(opts)
		require.NoError(t, err)
		assert.Equal(t, userConfig, result.Value)
		assert.Equal(t, SourceDefault, result.Source)
	})

	t.Run("project file wins over user config", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/proj/ris.yaml", []byte("{}\n"), 0o644))
		result, err := ResolveConfigPath(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/proj", "ris.yaml"), result.Value)
		assert.Equal(t, SourceConfig, result.Source)
		assert.Equal(t, userConfig, result.Shadowed[SourceDefault])
	})

	t.Run("env wins over project file", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/ris.yaml")
		result, err := ResolveConfigPath(opts)
		require.NoError(t, err)
		assert.Equal(t, "/env/ris.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/ris.yaml")
		flagOpts := opts
		flagOpts.FlagValue = "/flag/ris.yaml"
		result, err := ResolveConfigPath(flagOpts)
		require.NoError(t, err)
		assert.Equal(t, "/flag/ris.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/ris.yaml", result.Shadowed[SourceEnv])
	})
}
