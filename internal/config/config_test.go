package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "ctrl+c" {
		t.Errorf("Default Quit key = %s, want ctrl+c", defaults.Quit)
	}
	if defaults.AddStudent != "ctrl+s" {
		t.Errorf("Default AddStudent key = %s, want ctrl+s", defaults.AddStudent)
	}
	if defaults.Search != "ctrl+f" {
		t.Errorf("Default Search key = %s, want ctrl+f", defaults.Search)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STUDENTDB_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ctrl+c", cfg.KeyMappings.Quit)
	assert.Equal(t, 1000*time.Millisecond, cfg.Latency.Add)
	assert.Equal(t, 800*time.Millisecond, cfg.Latency.View)
	assert.Equal(t, time.Duration(0), cfg.Latency.Search)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("STUDENTDB_CONFIG", "")

	configDir := filepath.Join(tempDir, "studentdb")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `database:
  path: /tmp/roster.db
latency:
  add: 0s
  view: 250ms
key_mappings:
  quit: "ctrl+q"
  add_student: "ctrl+n"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/roster.db", cfg.Database.Path)
	assert.Equal(t, time.Duration(0), cfg.Latency.Add)
	assert.Equal(t, 250*time.Millisecond, cfg.Latency.View)
	assert.Equal(t, "ctrl+q", cfg.KeyMappings.Quit)
	assert.Equal(t, "ctrl+n", cfg.KeyMappings.AddStudent)

	// Unspecified values fall back to defaults
	assert.Equal(t, "ctrl+f", cfg.KeyMappings.Search)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STUDENTDB_CONFIG", "")
	t.Setenv("STUDENTDB_DB_PATH", ":memory:")
	t.Setenv("STUDENTDB_ADD_LATENCY", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, time.Duration(0), cfg.Latency.Add)
}

func TestLoadFromExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unterminated\n"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Database.Path = "/data/students.db"
	cfg.Latency.View = 0
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/students.db", loaded.Database.Path)
	assert.Equal(t, time.Duration(0), loaded.Latency.View)
	assert.Equal(t, cfg.KeyMappings, loaded.KeyMappings)
}

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STUDENTDB_CONFIG", "")

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := `theme:
  accent: "#FF0000"
  success: "#00FF00"
`
	require.NoError(t, os.WriteFile(themeFile, []byte(themeContent), 0o644))
	t.Setenv("STUDENTDB_THEME_FILE", themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Success)
	// Untouched colors keep the preset value
	assert.Equal(t, DefaultColorScheme().Normal, cfg.ColorScheme.Normal)
}

func TestMonochromePreset(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()

	assert.Equal(t, MonochromeColorScheme(), scheme)
}

func TestDatabasePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Database{Path: "~/.studentdb/students.db"}.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".studentdb", "students.db"), path)

	path, err = Database{Path: ":memory:"}.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", path)
}

func TestResolvePathOrder(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("STUDENTDB_CONFIG", "")

	path, err := ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/studentdb/config.yaml", path)

	t.Setenv("STUDENTDB_CONFIG", "/etc/studentdb.yaml")
	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/studentdb.yaml", path)

	path, err = ResolvePath("/opt/custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/custom.yaml", path)
}
