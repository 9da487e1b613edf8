package sand

// Fluid advances every fluid particle once and returns the moves made.
// Falling straight down wins over spreading sideways.
func Fluid(s *State) []Move {
	var moves []Move
	s.Particles.Each(KindFluid, func(p *Particle) {
		if mv, ok := s.flow(p); ok {
			moves = append(moves, mv)
		}
	})
	return moves
}

func (s *State) flow(p *Particle) (Move, bool) {
	x, y := p.Pos.X, p.Pos.Y
	if s.Grid.IsEmpty(x, y-1) {
		return s.tryMove(p, Coord{X: x, Y: y - 1})
	}

	// Probe up to dispersion-1 cells on the same row, right before left,
	// but only ever step one cell toward the first opening.
	for delta := 1; delta < p.Dispersion; delta++ {
		dir := 0
		switch {
		case s.Grid.IsEmpty(x+delta, y):
			dir = 1
		case s.Grid.IsEmpty(x-delta, y):
			dir = -1
		default:
			continue
		}
		next := Coord{X: x + dir, Y: y}
		if !s.Grid.IsEmpty(next.X, next.Y) {
			return Move{}, false
		}
		return s.tryMove(p, next)
	}
	return Move{}, false
}

func (s *State) tryMove(p *Particle, to Coord) (Move, bool) {
	mv, err := s.Move(p, to)
	if err != nil {
		return Move{}, false
	}
	return mv, true
}
