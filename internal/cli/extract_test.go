package cli

// Test Plan for the extract command plumbing:
// - loadConfig starts from defaults when no config file exists
// - Command-line flags override loaded config values
// - Flag overrides are re-validated (a bad --format fails)
// - extractTree + writeOutput produce a parseable JSON document covering
//   every supported file under the root

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotdoc-tools/dotdoc/internal/config"
)

func resetFlags() {
	extractFormat = ""
	extractOut = ""
	extractWorkers = 0
}

func TestLoadConfigDefaults(t *testing.T) {
	resetFlags()
	defer resetFlags()

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, config.Default().Paths.Include, cfg.Paths.Include)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	resetFlags()
	defer resetFlags()

	extractFormat = "yaml"
	extractOut = "docs.yml"
	extractWorkers = 3

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "docs.yml", cfg.Output.Path)
	assert.Equal(t, 3, cfg.Extract.Workers)
}

func TestLoadConfigRejectsBadFormatFlag(t *testing.T) {
	resetFlags()
	defer resetFlags()

	extractFormat = "pdf"
	_, err := loadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestExtractTreeWritesOutput(t *testing.T) {
	resetFlags()
	defer resetFlags()
	quiet = true
	defer func() { quiet = false }()

	cfg := config.Default()
	cfg.Output.Path = filepath.Join(t.TempDir(), "docs.json")

	units, err := extractTree(context.Background(), "../../testdata/code", cfg)
	require.NoError(t, err)
	require.Len(t, units, 5)

	require.NoError(t, writeOutput(cfg, units))

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 5)
	grammars := map[string]bool{}
	for _, unit := range decoded {
		grammars[unit["grammar"].(string)] = true
	}
	assert.True(t, grammars["csharp"])
	assert.True(t, grammars["vbnet"])
}
