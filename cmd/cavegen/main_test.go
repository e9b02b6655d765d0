package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cavegen/internal/cave"
	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/telemetry"
)

func TestPrintGridLogsGenerationID(t *testing.T) {
	gen := cave.NewGenerator(cave.WithTracer(telemetry.NoopTracer()))
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	cfg := cave.Config{Width: 12, Height: 6, FillPercent: 45, Seed: "print"}
	var buf bytes.Buffer
	require.NoError(t, printGrid(context.Background(), &buf, gen, cfg, presets.DefaultPalette(), false, log))

	want, err := gen.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, want.String()+"\n", buf.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "generated cave", entry.Message)
	assert.Equal(t, "print", entry.Data["seed"])
	id, ok := entry.Data["generation_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.NotEqual(t, want.ID, id, "each generation has its own id")
}

func TestPrintGridRejectsInvalidConfig(t *testing.T) {
	gen := cave.NewGenerator(cave.WithTracer(telemetry.NoopTracer()))
	log, hook := logtest.NewNullLogger()

	var buf bytes.Buffer
	err := printGrid(context.Background(), &buf, gen, cave.Config{Width: 0, Height: 5}, presets.DefaultPalette(), false, log)
	assert.ErrorIs(t, err, cave.ErrInvalidConfiguration)
	assert.Empty(t, buf.String())
	assert.Empty(t, hook.AllEntries())
}
