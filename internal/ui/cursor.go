package ui

// Cursor is the inspection marker drawn over the grid.
type Cursor struct {
	X, Y    int
	Visible bool
}

// Move shifts the cursor by the given delta, clamped to a width × height area.
func (c *Cursor) Move(dx, dy, width, height int) {
	c.X = clamp(c.X+dx, 0, width-1)
	c.Y = clamp(c.Y+dy, 0, height-1)
}

// Position returns the current x, y coordinates.
func (c *Cursor) Position() (int, int) {
	return c.X, c.Y
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
