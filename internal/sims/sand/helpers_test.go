package sand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type sprite struct {
	m    Material
	x, y int
}

// recordingVisuals tracks every allocator call.
type recordingVisuals struct {
	next        Handle
	live        map[Handle]sprite
	despawned   []Handle
	repositions int
}

func newRecordingVisuals() *recordingVisuals {
	return &recordingVisuals{live: make(map[Handle]sprite)}
}

func (v *recordingVisuals) Spawn(m Material, x, y int) Handle {
	v.next++
	v.live[v.next] = sprite{m: m, x: x, y: y}
	return v.next
}

func (v *recordingVisuals) Despawn(h Handle) {
	delete(v.live, h)
	v.despawned = append(v.despawned, h)
}

func (v *recordingVisuals) Reposition(h Handle, x, y int) {
	s := v.live[h]
	s.x, s.y = x, y
	v.live[h] = s
	v.repositions++
}

func newTestState(t *testing.T, boundary int) (*State, *recordingVisuals) {
	t.Helper()
	vis := newRecordingVisuals()
	return NewState(boundary, DefaultPhysics(), fixedRand(0), vis), vis
}

func spawn(t *testing.T, s *State, m Material, x, y int) *Particle {
	t.Helper()
	p, err := s.Spawn(m, Coord{X: x, Y: y})
	require.NoError(t, err)
	return p
}

func materialAt(t *testing.T, s *State, x, y int) Material {
	t.Helper()
	m, err := s.Grid.ElementAt(x, y)
	require.NoError(t, err)
	return m
}

// requireConsistent checks that grid occupants and particle records agree.
func requireConsistent(t *testing.T, s *State) {
	t.Helper()
	live := s.Particles.All()
	seen := make(map[Coord]bool, len(live))
	for _, p := range live {
		require.False(t, seen[p.Pos], "two particles at %v", p.Pos)
		seen[p.Pos] = true
		cell, err := s.Grid.CellAt(p.Pos.X, p.Pos.Y)
		require.NoError(t, err)
		require.Equal(t, p.Material, cell.Material, "grid disagrees with particle %d at %v", p.ID, p.Pos)
		require.Equal(t, p.Visual, cell.Visual)
		require.Same(t, p, s.Particles.At(p.Pos))
	}
	occupied := 0
	for i := 0; i < s.Grid.Len(); i++ {
		c, err := s.Grid.CoordOf(i)
		require.NoError(t, err)
		cell, err := s.Grid.CellAt(c.X, c.Y)
		require.NoError(t, err)
		if cell.Material != Empty {
			occupied++
		} else {
			require.Equal(t, NoHandle, cell.Visual, "empty cell %v holds a visual", c)
		}
	}
	require.Equal(t, len(live), occupied)
}
