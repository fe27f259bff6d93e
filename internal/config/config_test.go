package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".tinyrc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFileOnDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".tinyrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: cbor\nsimplified: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatCBOR, cfg.Format)
	assert.False(t, cfg.Simplified)
	assert.True(t, cfg.Color) // untouched field keeps its default
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".tinyrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFlagOverridesTakePrecedenceOverFile(t *testing.T) {
	base := Config{Format: FormatJSON, Simplified: true, Color: true, LogLevel: "info"}
	cbor := FormatCBOR
	simplified := false

	merged := FlagOverrides{Format: &cbor, Simplified: &simplified}.Apply(base)
	assert.Equal(t, FormatCBOR, merged.Format)
	assert.False(t, merged.Simplified)
	assert.True(t, merged.Color) // not overridden, stays as base had it
}

func TestApplyWithNoOverridesIsIdentity(t *testing.T) {
	base := Default()
	assert.Equal(t, base, FlagOverrides{}.Apply(base))
}
