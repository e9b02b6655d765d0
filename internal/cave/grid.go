package cave

import "strings"

// Grid is a width × height map of tiles stored in row-major order.
type Grid struct {
	Width  int
	Height int

	// Seed is the effective seed the grid was generated from. Empty for
	// grids built by hand.
	Seed string

	// ID identifies one Generate call and matches the span's
	// cave.generation_id attribute.
	ID string

	tiles []Tile
}

// NewGrid creates a grid filled with open tiles. Non-positive dimensions
// yield an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// ParseGrid builds a grid from text rows where '#' is a wall and any other
// character is open. Rows shorter than the first are padded with walls.
func ParseGrid(rows ...string) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := NewGrid(width, height)
	for y, row := range rows {
		for x := 0; x < width; x++ {
			if x >= len(row) || row[x] == '#' {
				g.Set(x, y, Wall)
			}
		}
	}
	return g
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given position. Off-grid positions read as walls.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.tiles[y*g.Width+x]
}

// Set stores a tile. Off-grid writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.Width+x] = t
}

// IsBorder reports whether (x, y) lies on the outer ring of the grid.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || x == g.Width-1 || y == 0 || y == g.Height-1
}

// WallNeighbors counts walls among the eight cells around (x, y).
// Off-grid neighbours count as walls.
func (g *Grid) WallNeighbors(x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			if g.At(nx, ny) == Wall {
				count++
			}
		}
	}
	return count
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Seed:   g.Seed,
		ID:     g.ID,
		tiles:  tiles,
	}
}

// Equal reports whether both grids have the same dimensions and tiles.
// Seed and ID are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Rows returns the grid as text rows, one per y.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.At(x, y).Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the grid with one line per row.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
