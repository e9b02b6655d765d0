// Package main is the entry point for cavegen.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/cavegen/internal/app"
	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/telemetry"
	"github.com/samdwyer/cavegen/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cavegen:", err)
		os.Exit(1)
	}
}

// run does all the work so that deferred cleanup happens before main exits.
func run() error {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := app.ConfigFromEnv(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, closeLog, err := app.NewLogger(cfg.LogLevel, cfg.LogFile, !cfg.Print && !cfg.ListPresets)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	registry, err := presets.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	if cfg.ListPresets {
		return app.ListPresets(os.Stdout, registry)
	}

	genCfg, palette, err := cfg.Resolve(registry)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := telemetry.ConfigureHoneycomb(os.Getenv, os.Setenv); err != nil {
		return fmt.Errorf("failed to configure telemetry: %w", err)
	}
	ctx := context.Background()

	if telemetry.Enabled(os.Getenv) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, continuing without it")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	gen := cave.NewGenerator()

	if cfg.Print {
		if err := printGrid(ctx, os.Stdout, gen, genCfg, palette, cfg.Color, log); err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		return nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	viewer := app.NewViewer(screen, gen, genCfg, palette, log)
	if err := viewer.Run(ctx); err != nil {
		screen.Close()
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}

// printGrid generates one grid and writes it to w.
func printGrid(ctx context.Context, w io.Writer, gen *cave.Generator, cfg cave.Config, palette presets.Palette, colored bool, log logrus.FieldLogger) error {
	grid, err := gen.Generate(ctx, cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"generation_id": grid.ID,
		"seed":          grid.Seed,
		"policy":        cfg.Policy.String(),
	}).Debug("generated cave")

	return ui.WriteText(w, grid, palette, colored)
}
