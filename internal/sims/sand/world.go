package sand

import (
	"particles/internal/core"
)

// TickStats reports what one tick changed.
type TickStats struct {
	Tick         uint64
	GravityMoves int
	FluidMoves   int
	Moves        []Move
	Particles    map[Material]int
}

// Settled reports whether nothing moved during the tick.
func (t TickStats) Settled() bool { return t.GravityMoves+t.FluidMoves == 0 }

// World drives the sandbox: it owns the State, runs the per-tick steps in
// order and adapts the result to the core.Sim contract.
type World struct {
	cfg   Config
	state *State
	rng   *core.RNG

	display *core.ByteGrid
	walls   []Handle

	tick uint64
	last TickStats
}

// New returns a sandbox with the provided boundary radius using defaults.
func New(boundary int) *World {
	cfg := DefaultConfig()
	cfg.Boundary = boundary
	return NewWithConfig(cfg, nil)
}

// NewWithConfig returns a sandbox configured from cfg. A nil vis runs
// headless. The world is reset with cfg.Seed before it is returned.
func NewWithConfig(cfg Config, vis Visuals) *World {
	if cfg.Boundary < 2 {
		cfg.Boundary = 2
	}
	rng := core.NewRNG(cfg.Seed)
	state := NewState(cfg.Boundary, cfg.Params.Physics(), rng, vis)
	if b, err := ParseBrushSize(cfg.Brush); err == nil {
		state.Brush = b
	}
	if m, err := ParseMaterial(cfg.Material); err == nil && m.Paintable() {
		state.Placing = m
	}
	side := 2*cfg.Boundary + 1
	w := &World{
		cfg:     cfg,
		state:   state,
		rng:     rng,
		display: core.NewByteGrid(side, side),
	}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the display dimensions, walls included.
func (w *World) Size() core.Size { return w.display.Size() }

// State exposes the simulation state.
func (w *World) State() *State { return w.state }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// LastStats returns the statistics of the most recent tick.
func (w *World) LastStats() TickStats { return w.last }

// Ticks returns how many ticks have run since the last reset.
func (w *World) Ticks() uint64 { return w.tick }

// Reset clears the world, rebuilds the walls and seeds the configured
// scenario. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.state.Clear()
	w.despawnWalls()
	w.spawnWalls()
	w.tick = 0
	w.last = TickStats{}

	switch w.cfg.Scenario {
	case ScenarioDunes:
		w.raiseRidge(effective)
	case ScenarioBasin:
		w.raiseRidge(effective)
		w.pourPool()
	}
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Tick() }

// Tick runs the gravity step then the fluid step and returns what moved.
func (w *World) Tick() TickStats {
	gravity := Gravity(w.state)
	fluid := Fluid(w.state)
	w.state.Particles.Compact()
	w.tick++

	moves := make([]Move, 0, len(gravity)+len(fluid))
	moves = append(moves, gravity...)
	moves = append(moves, fluid...)
	w.last = TickStats{
		Tick:         w.tick,
		GravityMoves: len(gravity),
		FluidMoves:   len(fluid),
		Moves:        moves,
		Particles:    w.state.Particles.CountByMaterial(),
	}
	return w.last
}

// PaintAt applies the active material with the active brush at (x, y).
func (w *World) PaintAt(x, y float64) PaintStats {
	return Paint(w.state, x, y)
}

// EraseAt erases with the active brush at (x, y) regardless of the active
// material.
func (w *World) EraseAt(x, y float64) PaintStats {
	return Apply(w.state, Empty, BrushCoordinates(x, y, w.state.Brush))
}

// Brush returns the active brush size.
func (w *World) Brush() BrushSize { return w.state.Brush }

// GrowBrush steps the brush up one size and returns it.
func (w *World) GrowBrush() BrushSize {
	w.state.Brush = w.state.Brush.Grow()
	return w.state.Brush
}

// ShrinkBrush steps the brush down one size and returns it.
func (w *World) ShrinkBrush() BrushSize {
	w.state.Brush = w.state.Brush.Shrink()
	return w.state.Brush
}

// Placing returns the active material.
func (w *World) Placing() Material { return w.state.Placing }

// Select makes m the active material. Boundary cannot be selected.
func (w *World) Select(m Material) error {
	if !m.Paintable() {
		return ErrInvalidMaterial
	}
	w.state.Placing = m
	return nil
}

// AttachVisuals switches to a new allocator and spawns a visual in it for
// every wall and particle.
func (w *World) AttachVisuals(vis Visuals) {
	if vis == nil {
		vis = &NopVisuals{}
	}
	w.state.Visuals = vis
	w.walls = w.walls[:0]
	w.spawnWalls()
	for _, p := range w.state.Particles.All() {
		p.Visual = vis.Spawn(p.Material, p.Pos.X, p.Pos.Y)
		_ = w.state.Grid.SetVisual(p.Pos.X, p.Pos.Y, p.Visual)
	}
}

// spawnWalls creates the wall visuals at |coord| == B. Walls are never
// stored in the grid; out-of-bounds reads already count as blocked.
func (w *World) spawnWalls() {
	b := w.state.Grid.Boundary()
	vis := w.state.Visuals
	for y := -b; y <= b; y++ {
		w.walls = append(w.walls, vis.Spawn(Boundary, b, y), vis.Spawn(Boundary, -b, y))
	}
	for x := -(b - 1); x < b; x++ {
		w.walls = append(w.walls, vis.Spawn(Boundary, x, b), vis.Spawn(Boundary, x, -b))
	}
}

func (w *World) despawnWalls() {
	for _, h := range w.walls {
		w.state.Visuals.Despawn(h)
	}
	w.walls = w.walls[:0]
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg), nil)
	})
}
