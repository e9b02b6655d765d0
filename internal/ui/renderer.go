package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
)

const (
	// cursorRune marks the inspection cursor.
	cursorRune = '+'
	// truncRune ends a message cut at the screen edge.
	truncRune = '>'
)

// Renderer handles drawing grids to the screen.
type Renderer struct {
	screen  *Screen
	palette presets.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette presets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid, the cursor and the status lines below the grid.
// A nil grid draws only the status lines.
func (r *Renderer) Render(grid *cave.Grid, cursor Cursor, status ...string) {
	r.screen.Clear()

	rows := 0
	if grid != nil {
		rows = grid.Height
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				tile := grid.At(x, y)
				r.screen.SetContent(x, y, tile.Rune(), r.TileStyle(tile))
			}
		}

		if cursor.Visible && grid.InBounds(cursor.X, cursor.Y) {
			cursorStyle := tcell.StyleDefault.
				Foreground(tcell.ColorYellow).
				Background(r.palette.Open).
				Bold(true)
			r.screen.SetContent(cursor.X, cursor.Y, cursorRune, cursorStyle)
		}
	}

	for i, line := range status {
		r.RenderMessage(line, rows+i)
	}

	r.screen.Show()
}

// TileStyle returns the style for a tile: the tile color on itself, so the
// grid reads as solid blocks.
func (r *Renderer) TileStyle(tile cave.Tile) tcell.Style {
	switch tile {
	case cave.Wall:
		return tcell.StyleDefault.Foreground(r.palette.Wall).Background(r.palette.Wall)
	case cave.Open:
		return tcell.StyleDefault.Foreground(r.palette.Open).Background(r.palette.Open)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given screen row. Rows below the
// screen are skipped and messages wider than the screen are cut, with the
// last visible cell marked.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, height := r.screen.Size()
	if y < 0 || y >= height || width <= 0 {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	runes := []rune(msg)
	if len(runes) > width {
		runes = append(runes[:width-1], truncRune)
	}
	for x, ch := range runes {
		r.screen.SetContent(x, y, ch, style)
	}
}
