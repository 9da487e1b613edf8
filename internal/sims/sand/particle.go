package sand

// ParticleID identifies a particle for its whole lifetime.
type ParticleID uint32

// Vec2 is a 2D velocity. Only Y is integrated by the gravity step.
type Vec2 struct {
	X, Y float64
}

// Particle is the simulation-owned record for one occupied cell. Velocity
// is meaningful for falling particles, Dispersion for fluids.
type Particle struct {
	ID         ParticleID
	Pos        Coord
	Material   Material
	Velocity   Vec2
	Dispersion int
	Visual     Handle

	removed bool
}

// Kind returns the behavioural class of the particle's material.
func (p *Particle) Kind() Kind { return p.Material.Kind() }

// Particles keeps live particles in insertion order, which is the fixed
// iteration order of the per-tick steps, plus a coordinate index.
type Particles struct {
	order  []*Particle
	at     map[Coord]*Particle
	nextID ParticleID
	dead   int
}

// NewParticles returns an empty collection.
func NewParticles() *Particles {
	return &Particles{at: make(map[Coord]*Particle)}
}

// Len returns the number of live particles.
func (ps *Particles) Len() int { return len(ps.order) - ps.dead }

// At returns the particle occupying c, or nil.
func (ps *Particles) At(c Coord) *Particle { return ps.at[c] }

func (ps *Particles) add(m Material, c Coord, visual Handle, dispersion int) *Particle {
	ps.nextID++
	p := &Particle{ID: ps.nextID, Pos: c, Material: m, Visual: visual}
	if m.Kind() == KindFluid {
		p.Dispersion = dispersion
	}
	ps.order = append(ps.order, p)
	ps.at[c] = p
	return p
}

func (ps *Particles) remove(c Coord) *Particle {
	p, ok := ps.at[c]
	if !ok {
		return nil
	}
	delete(ps.at, c)
	p.removed = true
	ps.dead++
	return p
}

func (ps *Particles) relocate(p *Particle, to Coord) {
	if ps.at[p.Pos] == p {
		delete(ps.at, p.Pos)
	}
	p.Pos = to
	ps.at[to] = p
}

// Each calls fn for every live particle of kind k in iteration order.
// Particles removed during the walk are skipped.
func (ps *Particles) Each(k Kind, fn func(*Particle)) {
	for i := 0; i < len(ps.order); i++ {
		p := ps.order[i]
		if p.removed || p.Kind() != k {
			continue
		}
		fn(p)
	}
}

// All returns the live particles in iteration order.
func (ps *Particles) All() []*Particle {
	out := make([]*Particle, 0, ps.Len())
	for _, p := range ps.order {
		if !p.removed {
			out = append(out, p)
		}
	}
	return out
}

// Compact drops removed particles from the iteration order.
func (ps *Particles) Compact() {
	if ps.dead == 0 {
		return
	}
	live := ps.order[:0]
	for _, p := range ps.order {
		if !p.removed {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(ps.order); i++ {
		ps.order[i] = nil
	}
	ps.order = live
	ps.dead = 0
}

// CountByMaterial tallies live particles per material.
func (ps *Particles) CountByMaterial() map[Material]int {
	counts := make(map[Material]int)
	for _, p := range ps.order {
		if !p.removed {
			counts[p.Material]++
		}
	}
	return counts
}

// Reset forgets every particle. IDs keep increasing.
func (ps *Particles) Reset() {
	ps.order = nil
	ps.at = make(map[Coord]*Particle)
	ps.dead = 0
}
