package ui

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"

	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
)

// WriteText writes the grid as '#'/'.' rows, one line per row. When colored
// is set, each tile is drawn in its palette color on itself. Palette colors
// without an RGB value are written plain.
func WriteText(w io.Writer, grid *cave.Grid, palette presets.Palette, colored bool) error {
	wallStyle := blockStyle(palette.Wall)
	openStyle := blockStyle(palette.Open)

	bw := bufio.NewWriter(w)
	for _, row := range grid.Rows() {
		if colored {
			for _, ch := range row {
				style := openStyle
				if ch == cave.Wall.Rune() {
					style = wallStyle
				}
				s := string(ch)
				if style != nil {
					s = style.Sprint(s)
				}
				if _, err := bw.WriteString(s); err != nil {
					return err
				}
			}
		} else if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// blockStyle returns a true-color style with c as both foreground and
// background, or nil if c has no RGB value.
func blockStyle(c tcell.Color) *color.RGBStyle {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return nil
	}
	rgb := color.RGB(uint8(r), uint8(g), uint8(b))
	return color.NewRGBStyle(rgb, rgb)
}
