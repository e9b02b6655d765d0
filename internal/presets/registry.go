package presets

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultName is the preset used when none is requested.
const DefaultName = "default"

// ErrUnknownPreset is returned when a preset name is not in the registry.
var ErrUnknownPreset = errors.New("unknown preset")

// Registry holds loaded presets keyed by name.
type Registry struct {
	presets map[string]*PresetDef
}

// NewRegistry creates a registry from loaded preset definitions.
// Later duplicates of a name replace earlier ones.
func NewRegistry(presets []PresetDef) *Registry {
	registry := &Registry{
		presets: make(map[string]*PresetDef),
	}
	for i := range presets {
		registry.presets[presets[i].Name] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// Get returns the preset with the given name. An empty name selects DefaultName.
func (r *Registry) Get(name string) (*PresetDef, error) {
	if name == "" {
		name = DefaultName
	}
	p, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names returns the preset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of distinct presets.
func (r *Registry) Count() int {
	return len(r.presets)
}
