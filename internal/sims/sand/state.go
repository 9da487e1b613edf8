package sand

import "fmt"

// Physics holds the tunable constants of the per-tick rules.
type Physics struct {
	TerminalVelocity float64
	Gravity          float64
	ThinningChance   float64
	Dispersion       int
}

// DefaultPhysics returns the standard constants.
func DefaultPhysics() Physics {
	return Physics{
		TerminalVelocity: 3,
		Gravity:          -1,
		ThinningChance:   0.8,
		Dispersion:       3,
	}
}

// Random is the source used for brush thinning.
type Random interface {
	Float64() float64
}

// State is the complete simulation state. Every step and placement
// function takes it explicitly; nothing is global.
type State struct {
	Grid      *Grid
	Particles *Particles

	Brush   BrushSize
	Placing Material

	Rand    Random
	Visuals Visuals
	Physics Physics
}

// NewState builds an empty world with walls at the given boundary radius.
// A nil vis falls back to NopVisuals.
func NewState(boundary int, phys Physics, rnd Random, vis Visuals) *State {
	if vis == nil {
		vis = &NopVisuals{}
	}
	return &State{
		Grid:      NewGrid(boundary),
		Particles: NewParticles(),
		Brush:     BrushSmall,
		Placing:   Sand,
		Rand:      rnd,
		Visuals:   vis,
		Physics:   phys,
	}
}

// Move records one relocation performed during a tick.
type Move struct {
	ID       ParticleID
	Material Material
	From     Coord
	To       Coord
	Visual   Handle
}

// Spawn places a new particle of material m into the empty cell c and
// allocates its visual.
func (s *State) Spawn(m Material, c Coord) (*Particle, error) {
	cur, err := s.Grid.ElementAt(c.X, c.Y)
	if err != nil {
		return nil, err
	}
	if m == Empty || m == Boundary {
		return nil, fmt.Errorf("%w: cannot spawn %s", ErrInvalidMaterial, m)
	}
	if cur != Empty {
		return nil, fmt.Errorf("sand: spawn target (%d,%d) occupied by %s", c.X, c.Y, cur)
	}
	h := s.Visuals.Spawn(m, c.X, c.Y)
	if err := s.Grid.SetCell(c.X, c.Y, Cell{Material: m, Visual: h}); err != nil {
		return nil, err
	}
	return s.Particles.add(m, c, h, s.Physics.Dispersion), nil
}

// Remove empties c, retiring its visual and particle record. It reports
// whether anything was there.
func (s *State) Remove(c Coord) (bool, error) {
	cell, err := s.Grid.CellAt(c.X, c.Y)
	if err != nil {
		return false, err
	}
	if cell.Material == Empty {
		return false, nil
	}
	if cell.Visual != NoHandle {
		s.Visuals.Despawn(cell.Visual)
	}
	s.Particles.remove(c)
	return true, s.Grid.SetCell(c.X, c.Y, Cell{})
}

// Move relocates p to the empty cell to. The grid double-write, the
// particle record and the visual reposition happen together or not at all.
func (s *State) Move(p *Particle, to Coord) (Move, error) {
	from := p.Pos
	if err := s.Grid.Move(from, to); err != nil {
		return Move{}, err
	}
	s.Particles.relocate(p, to)
	if p.Visual != NoHandle {
		s.Visuals.Reposition(p.Visual, to.X, to.Y)
	}
	return Move{ID: p.ID, Material: p.Material, From: from, To: to, Visual: p.Visual}, nil
}

// Clear removes every particle, despawning their visuals.
func (s *State) Clear() {
	for _, p := range s.Particles.All() {
		if p.Visual != NoHandle {
			s.Visuals.Despawn(p.Visual)
		}
	}
	s.Particles.Reset()
	s.Grid.Clear()
}
