package app

// Mode represents what the viewer is doing with input.
type Mode int

const (
	// ModeView shows the grid; clicks regenerate.
	ModeView Mode = iota
	// ModeInspect additionally shows a cursor and the neighbour count under it.
	ModeInspect
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeInspect:
		return "inspect"
	default:
		return "unknown"
	}
}
