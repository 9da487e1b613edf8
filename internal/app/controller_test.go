package app

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"particles/internal/sims/sand"
	"particles/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*Controller, *[]string) {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Boundary = 6
	cfg.Params.ThinningChance = 1
	ctl := NewController(sand.NewWithConfig(cfg, nil), telemetry.New())
	var notices []string
	ctl.Logf = func(format string, args ...any) {
		notices = append(notices, fmt.Sprintf(format, args...))
	}
	return ctl, &notices
}

func TestActionForKey(t *testing.T) {
	cases := map[string]Action{
		"up": ActionGrowBrush, "down": ActionShrinkBrush,
		"s": ActionSelectSand, "W": ActionSelectWater, "c": ActionSelectStone, "e": ActionSelectErase,
		" ": ActionTogglePause, "n": ActionStep, "r": ActionReset, "q": ActionQuit, "esc": ActionQuit,
		"x": ActionNone,
	}
	for key, want := range cases {
		assert.Equal(t, want, ActionForKey(key), "key %q", key)
	}
}

func TestControllerBrushAndMaterialNotices(t *testing.T) {
	ctl, notices := newTestController(t)
	ctl.Apply(ActionShrinkBrush)
	ctl.Apply(ActionGrowBrush)
	ctl.Apply(ActionSelectWater)
	ctl.Apply(ActionSelectWater)
	ctl.Apply(ActionSelectErase)

	assert.Equal(t, sand.BrushMedium, ctl.World().Brush())
	assert.Equal(t, sand.Empty, ctl.World().Placing())
	assert.Equal(t, []string{
		"brush size increased to medium",
		"switched to water",
		"switched to eraser",
	}, *notices, "no-op actions stay quiet")
}

func TestControllerPauseAndStep(t *testing.T) {
	ctl, _ := newTestController(t)
	_, ran := ctl.Advance()
	assert.True(t, ran)

	ctl.Apply(ActionTogglePause)
	_, ran = ctl.Advance()
	assert.False(t, ran)
	assert.Contains(t, ctl.Status(), "paused")

	ctl.Apply(ActionStep)
	st, ran := ctl.Advance()
	assert.True(t, ran)
	assert.Equal(t, uint64(2), st.Tick)
	_, ran = ctl.Advance()
	assert.False(t, ran, "a single step is consumed")
}

func TestControllerPaintsDisplayCoordinates(t *testing.T) {
	ctl, _ := newTestController(t)
	w := ctl.World()
	col, row := w.DisplayPos(2, 3)

	st := ctl.PaintDisplay(col, row, false)
	assert.Equal(t, 1, st.Placed)
	m, err := w.State().Grid.ElementAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, sand.Sand, m)

	st = ctl.PaintDisplay(col, row, true)
	assert.Equal(t, 1, st.Erased)
	assert.Equal(t, sand.Sand, w.Placing(), "erasing does not change the selection")

	st = ctl.PaintDisplay(0, 0, false)
	assert.Equal(t, 1, st.Skipped, "the wall ring is not paintable")

	var buf bytes.Buffer
	require.NoError(t, ctl.metrics.WriteText(&buf))
	assert.Contains(t, buf.String(), `sand_brush_cells_total{outcome="placed"} 1`)
	assert.Contains(t, buf.String(), `sand_brush_cells_total{outcome="erased"} 1`)
}

func TestControllerResetAndQuit(t *testing.T) {
	ctl, _ := newTestController(t)
	ctl.PaintDisplay(6, 6, false)
	ctl.Advance()
	ctl.Apply(ActionReset)
	assert.Equal(t, 0, ctl.World().State().Particles.Len())
	assert.Equal(t, uint64(0), ctl.World().Ticks())

	assert.False(t, ctl.Quit())
	ctl.Apply(ActionQuit)
	assert.True(t, ctl.Quit())
}

func TestConfigFlagsAndWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boundary: 12\nscenario: dunes\n"), 0o644))

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-config", path, "-seed", "99", "-set", "material=water", "-set", "boundary=10", "-scale", "2",
	}))
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, "boundary=10,material=water", cfg.Set.String())

	w, err := cfg.World(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, w.State().Grid.Boundary())
	assert.Equal(t, sand.ScenarioDunes, w.Config().Scenario)
	assert.Equal(t, int64(99), w.Config().Seed)
	assert.Equal(t, sand.Water, w.Placing())

	assert.Error(t, fs.Parse([]string{"-set", "novalue"}))

	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.World(nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigHostDefaultsYieldToFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boundary: 40\n"), 0o644))

	cfg := NewConfig()
	cfg.Defaults["boundary"] = "20"
	cfg.Defaults["scenario"] = sand.ScenarioDunes

	w, err := cfg.World(nil)
	require.NoError(t, err)
	assert.Equal(t, 20, w.State().Grid.Boundary(), "host default applies without a file")

	cfg.ConfigPath = path
	w, err = cfg.World(nil)
	require.NoError(t, err)
	assert.Equal(t, 40, w.State().Grid.Boundary(), "the file beats the host default")
	assert.Equal(t, sand.ScenarioDunes, w.Config().Scenario)

	cfg.Set["boundary"] = "12"
	w, err = cfg.World(nil)
	require.NoError(t, err)
	assert.Equal(t, 12, w.State().Grid.Boundary(), "-set beats the file")
}
