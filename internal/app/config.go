package app

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvPreset      = "CAVEGEN_PRESET"
	EnvWidth       = "CAVEGEN_WIDTH"
	EnvHeight      = "CAVEGEN_HEIGHT"
	EnvFillPercent = "CAVEGEN_FILL_PERCENT"
	EnvSeed        = "CAVEGEN_SEED"
	EnvRandomSeed  = "CAVEGEN_RANDOM_SEED"
	EnvPolicy      = "CAVEGEN_POLICY"
	EnvLogLevel    = "CAVEGEN_LOG_LEVEL"
	EnvLogFile     = "CAVEGEN_LOG_FILE"
)

// unset marks numeric overrides that should fall through to the preset.
const unset = -1

// Config holds command-line and environment options.
// Generation fields left unset take their value from the selected preset.
type Config struct {
	Preset      string
	Width       int
	Height      int
	FillPercent int
	Seed        string
	RandomSeed  bool
	Policy      string

	Print       bool // Write one grid to stdout instead of opening the viewer
	Color       bool // Colorize Print output
	ListPresets bool

	LogLevel string
	LogFile  string
}

// NewConfig returns a Config with every generation field unset.
func NewConfig() *Config {
	return &Config{
		Width:       unset,
		Height:      unset,
		FillPercent: unset,
		Color:       true,
		LogLevel:    "info",
	}
}

// ConfigFromEnv builds a Config from CAVEGEN_* variables using getenv.
func ConfigFromEnv(getenv func(string) string) (*Config, error) {
	c := NewConfig()
	c.Preset = getenv(EnvPreset)
	c.Seed = getenv(EnvSeed)
	c.Policy = getenv(EnvPolicy)
	c.LogFile = getenv(EnvLogFile)
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvFillPercent, &c.FillPercent},
	}
	for _, it := range ints {
		v := getenv(it.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s=%q: %w", it.name, v, err)
		}
		*it.dst = n
	}

	if v := getenv(EnvRandomSeed); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s=%q: %w", EnvRandomSeed, v, err)
		}
		c.RandomSeed = b
	}

	return c, nil
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults, so environment settings survive unless overridden.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "named preset to start from")
	fs.IntVar(&c.Width, "width", c.Width, "grid width (-1 uses the preset)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height (-1 uses the preset)")
	fs.IntVar(&c.FillPercent, "fill", c.FillPercent, "initial wall chance in percent (-1 uses the preset)")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed string; disables the random seed")
	fs.BoolVar(&c.RandomSeed, "random", c.RandomSeed, "derive the seed from the clock on every generation")
	fs.StringVar(&c.Policy, "policy", c.Policy, "smoothing policy: snapshot or inplace")
	fs.BoolVar(&c.Print, "print", c.Print, "print one grid to stdout and exit")
	fs.BoolVar(&c.Color, "color", c.Color, "colorize -print output")
	fs.BoolVar(&c.ListPresets, "list", c.ListPresets, "list presets and exit")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log file (viewer logs are discarded without one)")
}

// Resolve applies the overrides on top of the selected preset.
func (c *Config) Resolve(registry *presets.Registry) (cave.Config, presets.Palette, error) {
	preset, err := registry.Get(c.Preset)
	if err != nil {
		return cave.Config{}, presets.Palette{}, err
	}

	cfg, err := preset.Config()
	if err != nil {
		return cave.Config{}, presets.Palette{}, err
	}

	if c.Width != unset {
		cfg.Width = c.Width
	}
	if c.Height != unset {
		cfg.Height = c.Height
	}
	if c.FillPercent != unset {
		cfg.FillPercent = c.FillPercent
	}
	if c.Seed != "" {
		cfg.Seed = c.Seed
		cfg.UseRandomSeed = false
	}
	if c.RandomSeed {
		cfg.UseRandomSeed = true
	}
	if c.Policy != "" {
		cfg.Policy, err = cave.ParsePolicy(c.Policy)
		if err != nil {
			return cave.Config{}, presets.Palette{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cave.Config{}, presets.Palette{}, err
	}

	return cfg, preset.Palette(), nil
}
