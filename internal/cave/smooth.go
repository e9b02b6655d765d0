package cave

import (
	"fmt"
	"strings"
)

// SmoothingPolicy controls whether a smoothing pass sees its own writes.
type SmoothingPolicy int

const (
	// PolicySnapshot computes every count of a pass against the grid as it
	// stood at the start of that pass.
	PolicySnapshot SmoothingPolicy = iota
	// PolicyInPlace updates cells in scan order (x outer, y inner), so later
	// cells read neighbours already updated in the same pass.
	PolicyInPlace
)

// String returns a human-readable policy name.
func (p SmoothingPolicy) String() string {
	switch p {
	case PolicySnapshot:
		return "snapshot"
	case PolicyInPlace:
		return "inplace"
	default:
		return "unknown"
	}
}

func (p SmoothingPolicy) valid() bool {
	return p == PolicySnapshot || p == PolicyInPlace
}

// ParsePolicy converts a policy name back into a SmoothingPolicy.
func ParsePolicy(s string) (SmoothingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "snapshot":
		return PolicySnapshot, nil
	case "inplace", "in-place":
		return PolicyInPlace, nil
	default:
		return PolicySnapshot, fmt.Errorf("%w: unknown smoothing policy %q", ErrInvalidConfiguration, s)
	}
}

// nextTile applies the majority rule. Exactly four walls leaves the tile as is.
func nextTile(current Tile, walls int) Tile {
	switch {
	case walls > 4:
		return Wall
	case walls < 4:
		return Open
	default:
		return current
	}
}

// Smooth runs one smoothing pass over g using the given policy.
func Smooth(g *Grid, policy SmoothingPolicy) {
	src := g
	if policy != PolicyInPlace {
		src = g.Clone()
	}

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			walls := src.WallNeighbors(x, y)
			g.Set(x, y, nextTile(src.At(x, y), walls))
		}
	}
}
