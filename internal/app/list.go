package app

import (
	"fmt"
	"io"

	"github.com/samdwyer/cavegen/internal/presets"
)

// ListPresets writes one line per preset, sorted by name.
func ListPresets(w io.Writer, registry *presets.Registry) error {
	if _, err := fmt.Fprintf(w, "%d presets\n", registry.Count()); err != nil {
		return err
	}
	for _, name := range registry.Names() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		mode := "seed=" + p.Seed
		if p.RandomSeed {
			mode = "random"
		}
		if _, err := fmt.Fprintf(w, "%-10s %3dx%-3d fill=%d%%  %-14s %s\n",
			p.Name, p.Width, p.Height, p.FillPercent, mode, p.Description); err != nil {
			return err
		}
	}
	return nil
}
