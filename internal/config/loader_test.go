package config

// Test Plan for the configuration loader:
// - Load returns defaults when no config file exists
// - Load reads .dotdoc/config.yml and merges it over defaults
// - Environment variables (DOTDOC_*) override file values
// - Load rejects configurations that fail validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, rootDir, content string) {
	t.Helper()
	dir := filepath.Join(rootDir, ".dotdoc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Paths.Include, cfg.Paths.Include)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, `
paths:
  include:
    - "src/**/*.cs"
output:
  format: yaml
  path: docs.yml
extract:
  workers: 2
`)

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/**/*.cs"}, cfg.Paths.Include)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "docs.yml", cfg.Output.Path)
	assert.Equal(t, 2, cfg.Extract.Workers)
	// File did not set ignores, so defaults apply.
	assert.Equal(t, Default().Paths.Ignore, cfg.Paths.Ignore)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
output:
  format: yaml
`)
	t.Setenv("DOTDOC_OUTPUT_FORMAT", "html")

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Output.Format)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, `
output:
  format: pdf
`)

	_, err := NewLoader(root).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
