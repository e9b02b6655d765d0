package cave

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// DefaultFillPercent is the chance, in percent, that an interior cell
	// starts as a wall.
	DefaultFillPercent = 45

	// SmoothingPasses is the number of smoothing passes applied per generation.
	SmoothingPasses = 5
)

// ErrInvalidConfiguration is returned when a Config cannot produce a grid.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the parameters for one generation.
type Config struct {
	Width  int
	Height int

	// FillPercent is the probability (0-100) that an interior cell starts as a wall.
	FillPercent int

	// Seed is used verbatim unless UseRandomSeed is set.
	Seed          string
	UseRandomSeed bool

	// Policy selects how smoothing passes read their neighbours.
	Policy SmoothingPolicy
}

// DefaultConfig returns a Config with the default dimensions and fill.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FillPercent: DefaultFillPercent,
		Policy:      PolicySnapshot,
	}
}

// Validate checks the configuration. Every failure wraps ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfiguration, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfiguration, c.Height)
	}
	if c.FillPercent < 0 || c.FillPercent > 100 {
		return fmt.Errorf("%w: fill percent must be in [0,100], got %d", ErrInvalidConfiguration, c.FillPercent)
	}
	if !c.Policy.valid() {
		return fmt.Errorf("%w: unknown smoothing policy %d", ErrInvalidConfiguration, c.Policy)
	}
	return nil
}
