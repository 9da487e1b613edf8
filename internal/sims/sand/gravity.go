package sand

import "math"

// Gravity advances every falling particle once and returns the moves made.
// Negative velocity falls toward -y; positive velocity moves upward.
//
// Each particle scans up to floor(|v|) cells along its velocity, keeping
// the furthest clear cell. When the straight path is blocked it slides to
// the right, then left, diagonal at the blocked row and stops scanning. A
// particle with nowhere to go has its velocity zeroed and skips
// acceleration for the tick.
func Gravity(s *State) []Move {
	var moves []Move
	s.Particles.Each(KindFalling, func(p *Particle) {
		if mv, ok := s.fall(p); ok {
			moves = append(moves, mv)
		}
	})
	return moves
}

func (s *State) fall(p *Particle) (Move, bool) {
	v := s.clampVelocity(p)
	steps := int(math.Floor(math.Abs(v)))
	sign := -1
	if v > 0 {
		sign = 1
	}

	origin := p.Pos
	target := origin
	resting := false
	for delta := 1; delta <= steps; delta++ {
		checkY := origin.Y + delta*sign
		if s.Grid.IsEmpty(origin.X, checkY) {
			target = Coord{X: origin.X, Y: checkY}
			continue
		}
		if s.Grid.IsEmpty(origin.X+1, checkY) {
			target = Coord{X: origin.X + 1, Y: checkY}
			break
		}
		if s.Grid.IsEmpty(origin.X-1, checkY) {
			target = Coord{X: origin.X - 1, Y: checkY}
			break
		}
		p.Velocity = Vec2{}
		resting = true
		break
	}

	var mv Move
	moved := false
	if target != origin {
		var err error
		mv, err = s.Move(p, target)
		moved = err == nil
	}
	if !resting {
		s.accelerate(p)
	}
	return mv, moved
}

func (s *State) accelerate(p *Particle) {
	v := s.clampVelocity(p)
	if math.Abs(v) >= s.Physics.TerminalVelocity {
		return
	}
	p.Velocity.Y = v + s.Physics.Gravity
	s.clampVelocity(p)
}

// clampVelocity holds p's vertical velocity inside the current terminal
// velocity, which may have been lowered since p last accelerated.
func (s *State) clampVelocity(p *Particle) float64 {
	terminal := s.Physics.TerminalVelocity
	if p.Velocity.Y > terminal {
		p.Velocity.Y = terminal
	} else if p.Velocity.Y < -terminal {
		p.Velocity.Y = -terminal
	}
	return p.Velocity.Y
}
