package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "origin/main", cfg.Git.DefaultBase)
	assert.Equal(t, "cli", cfg.Git.Backend)
	assert.Equal(t, []string{"pyproject.toml", "uv.lock"}, cfg.Triggers.RootFiles)
	assert.Equal(t, []string{".github/"}, cfg.Triggers.DirPrefixes)
	assert.Empty(t, cfg.Workspace.Root)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".difftrace.json")
	content := `{
  "git": {"defaultBase": "origin/develop"},
  "workspace": {"root": "python"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "origin/develop", cfg.Git.DefaultBase)
	assert.Equal(t, "python", cfg.Workspace.Root)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, []string{"pyproject.toml", "uv.lock"}, cfg.Triggers.RootFiles)
}

func TestLoadConfig_EmptyTriggerListDisables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".difftrace.json")
	content := `{"triggers": {"rootFiles": [], "dirPrefixes": ["ci/"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Triggers.RootFiles)
	assert.NotNil(t, cfg.Triggers.RootFiles)
	assert.Equal(t, []string{"ci/"}, cfg.Triggers.DirPrefixes)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".difftrace.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".difftrace.json")

	cfg := DefaultConfig()
	cfg.Workspace.Root = "python"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
