package app

import (
	"fmt"
	"log"

	"particles/internal/sims/sand"
	"particles/internal/telemetry"
)

// Action is a host-independent input command.
type Action int

const (
	ActionNone Action = iota
	ActionGrowBrush
	ActionShrinkBrush
	ActionSelectSand
	ActionSelectWater
	ActionSelectStone
	ActionSelectErase
	ActionTogglePause
	ActionStep
	ActionReset
	ActionQuit
)

// ActionForKey maps the shared key bindings. Both hosts translate their
// native key events into runes or one of the arrow names first.
func ActionForKey(key string) Action {
	switch key {
	case "up":
		return ActionGrowBrush
	case "down":
		return ActionShrinkBrush
	case "s", "S":
		return ActionSelectSand
	case "w", "W":
		return ActionSelectWater
	case "c", "C":
		return ActionSelectStone
	case "e", "E":
		return ActionSelectErase
	case " ":
		return ActionTogglePause
	case "n", "N":
		return ActionStep
	case "r", "R":
		return ActionReset
	case "q", "Q", "esc":
		return ActionQuit
	}
	return ActionNone
}

// Controller applies input to a world and decides when it ticks.
type Controller struct {
	world   *sand.World
	metrics *telemetry.Metrics
	seed    int64

	paused   bool
	tickOnce bool
	quit     bool

	// Logf receives user-facing notices.
	Logf func(format string, args ...any)
}

// NewController wraps w. A nil metrics disables recording.
func NewController(w *sand.World, metrics *telemetry.Metrics) *Controller {
	return &Controller{world: w, metrics: metrics, seed: w.Config().Seed, Logf: log.Printf}
}

// World returns the driven world.
func (c *Controller) World() *sand.World { return c.world }

// Paused reports whether automatic ticking is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Quit reports whether the user asked to leave.
func (c *Controller) Quit() bool { return c.quit }

// Apply executes a.
func (c *Controller) Apply(a Action) {
	w := c.world
	switch a {
	case ActionGrowBrush:
		before := w.Brush()
		if after := w.GrowBrush(); after != before {
			c.Logf("brush size increased to %s", after)
		}
	case ActionShrinkBrush:
		before := w.Brush()
		if after := w.ShrinkBrush(); after != before {
			c.Logf("brush size decreased to %s", after)
		}
	case ActionSelectSand:
		c.selectMaterial(sand.Sand)
	case ActionSelectWater:
		c.selectMaterial(sand.Water)
	case ActionSelectStone:
		c.selectMaterial(sand.Stone)
	case ActionSelectErase:
		c.selectMaterial(sand.Empty)
	case ActionTogglePause:
		c.paused = !c.paused
	case ActionStep:
		c.tickOnce = true
	case ActionReset:
		w.Reset(c.seed)
		c.tickOnce = false
	case ActionQuit:
		c.quit = true
	}
}

func (c *Controller) selectMaterial(m sand.Material) {
	if c.world.Placing() == m {
		return
	}
	if err := c.world.Select(m); err != nil {
		c.Logf("select %s: %v", m, err)
		return
	}
	if m == sand.Empty {
		c.Logf("switched to eraser")
		return
	}
	c.Logf("switched to %s", m)
}

// PaintDisplay applies the brush at display column and row. Erase forces
// the eraser regardless of the active material.
func (c *Controller) PaintDisplay(col, row int, erase bool) sand.PaintStats {
	x, y := c.world.WorldPos(col, row)
	var st sand.PaintStats
	if erase {
		st = c.world.EraseAt(float64(x), float64(y))
	} else {
		st = c.world.PaintAt(float64(x), float64(y))
	}
	if c.metrics != nil {
		c.metrics.ObservePaint(st)
	}
	return st
}

// Advance runs one tick unless paused; a pending single step overrides the
// pause. It reports whether a tick ran.
func (c *Controller) Advance() (sand.TickStats, bool) {
	if c.paused && !c.tickOnce {
		return sand.TickStats{}, false
	}
	c.tickOnce = false
	st := c.world.Tick()
	if c.metrics != nil {
		c.metrics.Observe(st)
	}
	return st, true
}

// Status summarises the brush state for a status line.
func (c *Controller) Status() string {
	w := c.world
	material := w.Placing().String()
	if w.Placing() == sand.Empty {
		material = "eraser"
	}
	state := "running"
	if c.paused {
		state = "paused"
	}
	return fmt.Sprintf("brush %s | %s | tick %d | %s", w.Brush(), material, w.Ticks(), state)
}
