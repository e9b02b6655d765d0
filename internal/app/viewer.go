// Package app wires configuration, generation and the terminal viewer.
package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/telemetry"
	"github.com/samdwyer/cavegen/internal/ui"
)

const helpLine = "click/r: regenerate  p: policy  i: inspect  q: quit"

// Viewer is the interactive terminal front end. It decides when to
// regenerate and hands each finished grid to the renderer.
type Viewer struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *cave.Generator
	log       logrus.FieldLogger

	cfg     cave.Config
	grid    *cave.Grid
	cursor  ui.Cursor
	mode    Mode
	buttons tcell.ButtonMask
	lastErr error
	running bool
}

// NewViewer creates a viewer drawing to screen.
func NewViewer(screen *ui.Screen, gen *cave.Generator, cfg cave.Config, palette presets.Palette, log logrus.FieldLogger) *Viewer {
	return &Viewer{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, palette),
		generator: gen,
		log:       log,
		cfg:       cfg,
		mode:      ModeView,
		running:   true,
	}
}

// Run generates the first grid and then processes input until quit.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.Regenerate(ctx); err != nil {
		return err
	}

	for v.running {
		v.render()
		v.HandleEvent(ctx, v.screen.PollEvent())
	}

	v.screen.Close()
	return nil
}

// Grid returns the grid currently on display.
func (v *Viewer) Grid() *cave.Grid {
	return v.grid
}

// Mode returns the current input mode.
func (v *Viewer) Mode() Mode {
	return v.mode
}

// Running reports whether the viewer loop should continue.
func (v *Viewer) Running() bool {
	return v.running
}

// Regenerate replaces the displayed grid with a fresh generation from the
// current configuration.
func (v *Viewer) Regenerate(ctx context.Context) error {
	return v.generate(ctx, v.cfg)
}

func (v *Viewer) generate(ctx context.Context, cfg cave.Config) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	grid, err := v.generator.Generate(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		v.lastErr = err
		v.log.WithError(err).Error("generation failed")
		return err
	}

	v.grid = grid
	v.lastErr = nil
	v.cursor.Move(0, 0, grid.Width, grid.Height)

	span.SetAttributes(
		attribute.String("cave.seed", grid.Seed),
		attribute.String("cave.generation_id", grid.ID),
		attribute.String("viewer.mode", v.mode.String()),
	)
	v.log.WithFields(logrus.Fields{
		"generation_id": grid.ID,
		"seed":          grid.Seed,
		"policy":        cfg.Policy.String(),
		"width":         grid.Width,
		"height":        grid.Height,
		"walls":         grid.Count(cave.Wall),
	}).Info("generated cave")

	return nil
}

// HandleEvent processes a single input event.
func (v *Viewer) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		v.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleMouseEvent regenerates on the press edge of the primary button.
func (v *Viewer) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
	v.buttons = buttons

	if !pressed {
		return
	}
	if v.mode == ModeInspect && v.grid != nil {
		x, y := ev.Position()
		if v.grid.InBounds(x, y) {
			v.cursor.X, v.cursor.Y = x, y
			return
		}
	}
	_ = v.Regenerate(ctx)
}

func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			_ = v.Regenerate(ctx)
		case 'p', 'P':
			v.togglePolicy(ctx)
		case 'i', 'I':
			v.toggleInspect()
		}
	}
}

// togglePolicy switches the smoothing policy and redraws the same seed with it.
func (v *Viewer) togglePolicy(ctx context.Context) {
	if v.cfg.Policy == cave.PolicySnapshot {
		v.cfg.Policy = cave.PolicyInPlace
	} else {
		v.cfg.Policy = cave.PolicySnapshot
	}

	cfg := v.cfg
	if v.grid != nil {
		cfg.Seed = v.grid.Seed
		cfg.UseRandomSeed = false
	}
	_ = v.generate(ctx, cfg)
}

func (v *Viewer) toggleInspect() {
	if v.mode == ModeInspect {
		v.mode = ModeView
	} else {
		v.mode = ModeInspect
	}
	v.cursor.Visible = v.mode == ModeInspect
}

func (v *Viewer) moveCursor(dx, dy int) {
	if v.mode != ModeInspect || v.grid == nil {
		return
	}
	v.cursor.Move(dx, dy, v.grid.Width, v.grid.Height)
}

// Status returns the lines shown under the grid.
func (v *Viewer) Status() []string {
	if v.lastErr != nil {
		return []string{"error: " + v.lastErr.Error(), helpLine}
	}
	if v.grid == nil {
		return []string{helpLine}
	}

	lines := []string{
		fmt.Sprintf("seed=%s policy=%s fill=%d%% walls=%d/%d",
			v.grid.Seed, v.cfg.Policy, v.cfg.FillPercent,
			v.grid.Count(cave.Wall), v.grid.Width*v.grid.Height),
	}
	if v.mode == ModeInspect {
		x, y := v.cursor.Position()
		lines = append(lines, fmt.Sprintf("(%d,%d) %s, %d wall neighbours",
			x, y, v.grid.At(x, y), v.grid.WallNeighbors(x, y)))
	}
	return append(lines, helpLine)
}

func (v *Viewer) render() {
	v.renderer.Render(v.grid, v.cursor, v.Status()...)
}
