package engineconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eseidel/yarborough/internal/engineconfig"
)

func TestLoadReturnsDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := engineconfig.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.Equal(t, engineconfig.DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadDecodesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yarborough.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
rules_dir         = "custom/shards"
fallback_strategy = "natural"
log_level         = "debug"
`), 0o644))

	cfg, err := engineconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, "custom/shards", cfg.RulesDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := engineconfig.DefaultConfig()
	cfg.LogLevel = "verbose"
	require.Error(t, cfg.Validate())
}
