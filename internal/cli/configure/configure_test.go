package configure

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := ConfigCmd()
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return output, err
}

func TestInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	output, err := execute(t, "init", "--path", path)

	require.NoError(t, err)
	assert.Contains(t, output, path)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Latency, cfg.Latency)
	assert.Equal(t, "ctrl+s", cfg.KeyMappings.AddStudent)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	_, err := execute(t, "init", "--path", path, "--json")

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	data, _ := os.ReadFile(path)
	assert.Contains(t, string(data), "debug")

	_, err = execute(t, "init", "--path", path, "--force")
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.NotContains(t, string(data), "debug")
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("STUDENTDB_CONFIG", "")

	output, err := execute(t, "path")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/studentdb/config.yaml", strings.TrimSpace(output))
}

func TestPath_HonoursEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("STUDENTDB_CONFIG", "/etc/studentdb.yaml")

	output, err := execute(t, "path")

	require.NoError(t, err)
	assert.Equal(t, "/etc/studentdb.yaml", strings.TrimSpace(output))
}

func TestPath_HonoursConfigFlag(t *testing.T) {
	t.Setenv("STUDENTDB_CONFIG", "/etc/studentdb.yaml")
	cmd := ConfigCmd()
	cmd.SetArgs([]string{"path"})
	cmd.SetContext(cli.WithConfigPath(context.Background(), "/opt/custom.yaml"))

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})

	require.NoError(t, err)
	assert.Equal(t, "/opt/custom.yaml", strings.TrimSpace(output))
}

func TestInit_DefaultsToResolvedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "from-env.yaml")
	t.Setenv("STUDENTDB_CONFIG", path)

	output, err := execute(t, "init", "--json")

	require.NoError(t, err)
	assert.Contains(t, output, `"path"`)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
