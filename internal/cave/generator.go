package cave

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cavegen/internal/telemetry"
)

// Generator produces cave grids. It holds no grid state between calls, so a
// single Generator may be shared.
type Generator struct {
	now    func() time.Time
	tracer trace.Tracer
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock sets the time source used to derive random seeds.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithTracer sets the tracer used for generation spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) {
		if t != nil {
			g.tracer = t
		}
	}
}

// NewGenerator creates a generator using the wall clock and the global tracer.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		tracer: telemetry.Tracer("cave"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a new grid from scratch: random fill followed by
// SmoothingPasses smoothing passes. It fails with ErrInvalidConfiguration
// before allocating anything if cfg is invalid.
func (g *Generator) Generate(ctx context.Context, cfg Config) (*Grid, error) {
	_, span := g.tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()

	span.SetAttributes(
		attribute.Int("cave.width", cfg.Width),
		attribute.Int("cave.height", cfg.Height),
		attribute.Int("cave.fill_percent", cfg.FillPercent),
		attribute.String("cave.policy", cfg.Policy.String()),
		attribute.Bool("cave.random_seed", cfg.UseRandomSeed),
	)

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	seed := ResolveSeed(cfg, g.now())
	rng := NewRNG(seed)

	grid := NewGrid(cfg.Width, cfg.Height)
	grid.Seed = seed
	grid.ID = uuid.NewString()

	Fill(rng, grid, cfg.FillPercent)
	for i := 0; i < SmoothingPasses; i++ {
		Smooth(grid, cfg.Policy)
	}

	span.SetAttributes(
		attribute.String("cave.seed", seed),
		attribute.String("cave.generation_id", grid.ID),
		attribute.Int("cave.wall_count", grid.Count(Wall)),
		attribute.Int64("cave.generation_us", time.Since(startTime).Microseconds()),
	)

	return grid, nil
}

// Fill seeds the grid with noise. Border cells become walls without
// consuming a draw; every interior cell draws once from rng in x-major
// order and becomes a wall if the draw is below fillPercent.
func Fill(rng *rand.Rand, g *Grid, fillPercent int) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.IsBorder(x, y) {
				g.Set(x, y, Wall)
				continue
			}
			if rng.IntN(100) < fillPercent {
				g.Set(x, y, Wall)
			} else {
				g.Set(x, y, Open)
			}
		}
	}
}
