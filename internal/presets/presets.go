package presets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavegen/internal/cave"
)

// PresetDef defines a named generation preset loaded from JSON.
type PresetDef struct {
	Name        string `json:"name"`        // Unique identifier (e.g., "caverns")
	Description string `json:"description"` // One-line summary shown in listings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FillPercent int    `json:"fillPercent"` // Chance (0-100) an interior cell starts as wall
	Seed        string `json:"seed"`
	RandomSeed  bool   `json:"randomSeed"` // Derive the seed from the clock on every generation
	Policy      string `json:"policy"`     // "snapshot" or "inplace"
	WallColor   string `json:"wallColor"`  // Hex color code for walls
	OpenColor   string `json:"openColor"`  // Hex color code for open tiles
}

// Config converts the preset into a generation config.
func (p *PresetDef) Config() (cave.Config, error) {
	policy, err := cave.ParsePolicy(p.Policy)
	if err != nil {
		return cave.Config{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	cfg := cave.Config{
		Width:         p.Width,
		Height:        p.Height,
		FillPercent:   p.FillPercent,
		Seed:          p.Seed,
		UseRandomSeed: p.RandomSeed,
		Policy:        policy,
	}
	if err := cfg.Validate(); err != nil {
		return cave.Config{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return cfg, nil
}

// Palette returns the wall and open colors. Unparseable colors fall back to
// dark gray walls on white.
func (p *PresetDef) Palette() Palette {
	pal := DefaultPalette()
	if c, err := ParseHexColor(p.WallColor); err == nil {
		pal.Wall = c
	}
	if c, err := ParseHexColor(p.OpenColor); err == nil {
		pal.Open = c
	}
	return pal
}

// Palette holds the display colors for both tile kinds.
type Palette struct {
	Wall tcell.Color
	Open tcell.Color
}

// DefaultPalette draws walls dark and open ground light.
func DefaultPalette() Palette {
	return Palette{Wall: tcell.ColorDarkGray, Open: tcell.ColorWhite}
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
