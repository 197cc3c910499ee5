package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/seedmap/internal/solve"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seedmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Verify.Enabled)
	assert.Equal(t, solve.DefaultOptions(), cfg.Verify.Options())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
format: json
strict: true
verify:
  enabled: true
  workers: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Verify.Enabled)
	assert.Equal(t, 3, cfg.Verify.Workers)
	assert.Equal(t, Default().Verify.BatchSize, cfg.Verify.BatchSize)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"bad yaml", "format: [", "parse"},
		{"bad format", "format: xml", "invalid format"},
		{"no workers", "verify:\n  workers: 0", "verify.workers"},
		{"no batch", "verify:\n  batch_size: 0", "verify.batch_size"},
		{"negative cap", "verify:\n  max_seeds: -1", "verify.max_seeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
