package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsinc/ris/internal/config"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/testutil"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvBasePath, "")
	for _, key := range config.Keys {
		t.Setenv(config.EnvVar(key), "")
	}
}

func runRoot(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmdWithFs(fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "ris", root.Use)
	for _, flag := range []string{"config", "base-path", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	names := []string{}
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"make:repository", "make:service", "config", "version"})
}

func TestRoot_MakeRepositoryOnDisk(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	out, err := runRoot(t, afero.NewOsFs(), "--base-path", dir, "make:repository", "--model", "Order", "-n")
	require.NoError(t, err)
	assert.Contains(t, out, "OrderRepository created successfully.")

	for _, rel := range []string{
		"app/Interfaces/OrderInterface.php",
		"app/Repositories/OrderRepository.php",
		"app/Providers/RepositoryServiceProvider.php",
	} {
		_, err := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, err, rel)
	}
}

func TestRoot_ProjectConfigIsPickedUp(t *testing.T) {
	isolateEnv(t)
	fs := afero.NewMemMapFs()
	testutil.WriteFs(t, fs, "/proj/ris.yaml", "appDir: src\nrootNamespace: Acme\n")

	_, err := runRoot(t, fs, "--base-path", "/proj", "make:service", "--controller", "Invoice", "-n")
	require.NoError(t, err)

	content := testutil.ReadFs(t, fs, "/proj/src/Services/InvoiceService.php")
	assert.Contains(t, content, `namespace Acme\Services;`)
}

func TestRoot_BasePathFromEnv(t *testing.T) {
	isolateEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))
	t.Setenv(config.EnvBasePath, "/proj")

	_, err := runRoot(t, fs, "make:repository", "--name", "Customer", "-n")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/proj/app/Repositories/CustomerRepository.php")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRoot_ConfigInitThenVet(t *testing.T) {
	isolateEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))

	_, err := runRoot(t, fs, "--base-path", "/proj", "config", "init")
	require.NoError(t, err)

	out, err := runRoot(t, fs, "--base-path", "/proj", "config", "vet")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file is valid: /proj/ris.yaml")
}

func TestRoot_UnreadableConfigFile(t *testing.T) {
	isolateEnv(t)
	fs := afero.NewMemMapFs()
	testutil.WriteFs(t, fs, "/proj/ris.yaml", "style: [unterminated\n")

	_, err := runRoot(t, fs, "--base-path", "/proj", "make:repository", "--model", "Order", "-n")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}
