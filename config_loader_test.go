package siman

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	cfg := NewAnnealerConfig()
	cfg.CoolingRatio = 0.9

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveConfigToFile(cfg, path))

	loaded, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateConfigRejectsBadCoolingRatio(t *testing.T) {
	cfg := NewAnnealerConfig()
	cfg.CoolingRatio = 1.5

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cooling_ratio")
}

func TestNewPresetConfigRejectsUnknownPreset(t *testing.T) {
	_, err := NewPresetConfig(ConfigPreset("nonsense"))
	require.Error(t, err)
}

func TestNewPresetConfigKnownPresets(t *testing.T) {
	for preset := range ListPresets() {
		cfg, err := NewPresetConfig(preset)
		require.NoError(t, err)
		assert.NoError(t, ValidateConfig(cfg))
	}
}
