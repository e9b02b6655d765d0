// Package cave provides seeded cellular-automaton cave generation.
package cave

// Tile represents a single grid cell.
type Tile uint8

const (
	// Open represents a passable tile.
	Open Tile = iota
	// Wall represents an impassable tile.
	Wall
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t == Wall {
		return '#'
	}
	return '.'
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}
