package app

import (
	"errors"
	"flag"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(envMap(map[string]string{
		EnvPreset:      "caverns",
		EnvWidth:       "50",
		EnvFillPercent: "0",
		EnvSeed:        "from-env",
		EnvRandomSeed:  "false",
		EnvPolicy:      "inplace",
		EnvLogLevel:    "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "caverns", cfg.Preset)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, unset, cfg.Height)
	assert.Equal(t, 0, cfg.FillPercent)
	assert.Equal(t, "from-env", cfg.Seed)
	assert.Equal(t, "inplace", cfg.Policy)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFromEnvRejectsGarbage(t *testing.T) {
	_, err := ConfigFromEnv(envMap(map[string]string{EnvHeight: "tall"}))
	assert.Error(t, err)

	_, err = ConfigFromEnv(envMap(map[string]string{EnvRandomSeed: "maybe"}))
	assert.Error(t, err)
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(envMap(map[string]string{EnvWidth: "50", EnvSeed: "env"}))
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "flag", "-print", "-color=false"}))

	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, "flag", cfg.Seed)
	assert.True(t, cfg.Print)
	assert.False(t, cfg.Color)
}

func TestResolveAppliesOverrides(t *testing.T) {
	registry, err := presets.LoadRegistry()
	require.NoError(t, err)

	cfg := NewConfig()
	cfg.Preset = "default"
	cfg.Width = 33
	cfg.Seed = "fixed"

	genCfg, palette, err := cfg.Resolve(registry)
	require.NoError(t, err)

	assert.Equal(t, 33, genCfg.Width)
	assert.Equal(t, 24, genCfg.Height)
	assert.Equal(t, 45, genCfg.FillPercent)
	assert.Equal(t, "fixed", genCfg.Seed)
	assert.False(t, genCfg.UseRandomSeed, "an explicit seed turns off the preset's random seed")
	assert.Equal(t, cave.PolicySnapshot, genCfg.Policy)

	def, err := registry.Get("default")
	require.NoError(t, err)
	assert.Equal(t, def.Palette(), palette)
}

func TestResolveStartsFromPresetConfig(t *testing.T) {
	registry, err := presets.LoadRegistry()
	require.NoError(t, err)

	tunnels, err := registry.Get("tunnels")
	require.NoError(t, err)
	want, err := tunnels.Config()
	require.NoError(t, err)

	cfg := NewConfig()
	cfg.Preset = "tunnels"
	got, _, err := cfg.Resolve(registry)
	require.NoError(t, err)
	assert.Equal(t, want, got, "no overrides leaves the preset config untouched")

	cfg.Policy = "snapshot"
	cfg.FillPercent = 30
	got, _, err = cfg.Resolve(registry)
	require.NoError(t, err)
	assert.Equal(t, cave.PolicySnapshot, got.Policy)
	assert.Equal(t, 30, got.FillPercent)
	assert.Equal(t, want.Seed, got.Seed)
}

func TestResolveErrors(t *testing.T) {
	registry, err := presets.LoadRegistry()
	require.NoError(t, err)

	cfg := NewConfig()
	cfg.Preset = "missing"
	_, _, err = cfg.Resolve(registry)
	assert.True(t, errors.Is(err, presets.ErrUnknownPreset))

	cfg = NewConfig()
	cfg.Width = 0
	_, _, err = cfg.Resolve(registry)
	assert.True(t, errors.Is(err, cave.ErrInvalidConfiguration))

	cfg = NewConfig()
	cfg.Policy = "spiral"
	_, _, err = cfg.Resolve(registry)
	assert.True(t, errors.Is(err, cave.ErrInvalidConfiguration))
}

func TestNewLogger(t *testing.T) {
	log, closeFn, err := NewLogger("warn", "", true)
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	_, _, err = NewLogger("loud", "", false)
	assert.Error(t, err)
}
