package sand

// PaintStats summarises one placement or removal batch.
type PaintStats struct {
	Placed  int
	Erased  int
	Skipped int
}

// Apply paints m onto every coordinate in coords, or erases them when m is
// Empty. Coordinates outside the walls are skipped. Painting never
// overwrites an occupied cell, and thinned materials only land where a
// Bernoulli trial with Physics.ThinningChance succeeds.
func Apply(s *State, m Material, coords []Coord) PaintStats {
	var st PaintStats
	for _, c := range coords {
		if !s.Grid.InBounds(c.X, c.Y) {
			st.Skipped++
			continue
		}
		if m == Empty {
			erased, err := s.Remove(c)
			if err != nil || !erased {
				st.Skipped++
				continue
			}
			st.Erased++
			continue
		}
		if !s.Grid.IsEmpty(c.X, c.Y) {
			st.Skipped++
			continue
		}
		if m.Thinned() && !s.chance(s.Physics.ThinningChance) {
			st.Skipped++
			continue
		}
		if _, err := s.Spawn(m, c); err != nil {
			st.Skipped++
			continue
		}
		st.Placed++
	}
	return st
}

// Paint applies the active material with the active brush centred on the
// world-space cursor (cx, cy).
func Paint(s *State, cx, cy float64) PaintStats {
	return Apply(s, s.Placing, BrushCoordinates(cx, cy, s.Brush))
}

func (s *State) chance(p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 || s.Rand == nil {
		return false
	}
	return s.Rand.Float64() < p
}
