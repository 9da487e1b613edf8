package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFluidFallsBeforeSpreading(t *testing.T) {
	s, _ := newTestState(t, 10)
	p := spawn(t, s, Water, 0, 0)

	moves := Fluid(s)

	require.Len(t, moves, 1)
	require.Equal(t, Coord{0, -1}, p.Pos)
	require.Equal(t, Empty, materialAt(t, s, 0, 0))
	require.Equal(t, Water, materialAt(t, s, 0, -1))
}

func TestFluidSpreadsRightThenLeft(t *testing.T) {
	s, _ := newTestState(t, 10)
	floor := -s.Grid.Limit()
	p := spawn(t, s, Water, 0, floor)

	Fluid(s)
	require.Equal(t, Coord{1, floor}, p.Pos)

	s, _ = newTestState(t, 10)
	p = spawn(t, s, Water, 0, floor)
	spawn(t, s, Stone, 1, floor)

	Fluid(s)
	require.Equal(t, Coord{-1, floor}, p.Pos)
	requireConsistent(t, s)
}

func TestFluidWithUnitDispersionNeverSpreads(t *testing.T) {
	s, _ := newTestState(t, 10)
	s.Physics.Dispersion = 1
	floor := -s.Grid.Limit()
	p := spawn(t, s, Water, 0, floor)
	require.Equal(t, 1, p.Dispersion)

	require.Empty(t, Fluid(s))
	require.Equal(t, Coord{0, floor}, p.Pos)
}

func TestFluidBlockedNeighbourIsNotOverwritten(t *testing.T) {
	s, _ := newTestState(t, 10)
	floor := -s.Grid.Limit()
	p := spawn(t, s, Water, 0, floor)
	right := spawn(t, s, Water, 1, floor)
	left := spawn(t, s, Stone, -1, floor)
	spawn(t, s, Stone, 2, floor+1)
	spawn(t, s, Stone, 1, floor+1)
	spawn(t, s, Stone, 0, floor+1)

	Fluid(s)

	// The particle at x=0 sees x=2 open but x=1 is taken; it must stay.
	assert.Equal(t, Coord{0, floor}, p.Pos)
	assert.Equal(t, Coord{2, floor}, right.Pos)
	assert.Equal(t, Coord{-1, floor}, left.Pos)
	requireConsistent(t, s)
}

func TestFluidMovesAtMostOneCell(t *testing.T) {
	s, _ := newTestState(t, 14)
	s.Physics.Dispersion = 6
	Apply(s, Water, BrushCoordinates(0, 0, BrushXXLarge))
	require.Equal(t, 81, s.Particles.Len())

	for tick := 0; tick < 80; tick++ {
		for _, mv := range Fluid(s) {
			dx := abs(mv.To.X - mv.From.X)
			dy := abs(mv.To.Y - mv.From.Y)
			require.Equal(t, 1, dx+dy, "tick %d move %+v", tick, mv)
			require.Equal(t, Water, mv.Material)
		}
		requireConsistent(t, s)
	}
	require.Equal(t, 81, s.Grid.Count(Water))
}

func TestFluidProbeStopsShortOfDispersion(t *testing.T) {
	s, _ := newTestState(t, 10)
	floor := -s.Grid.Limit()
	p := spawn(t, s, Water, 0, floor)
	require.Equal(t, 3, p.Dispersion)
	for _, x := range []int{1, -1, 2, -2} {
		spawn(t, s, Stone, x, floor)
	}

	// x=+-3 is open but lies beyond dispersion-1.
	require.Empty(t, Fluid(s))
	require.Equal(t, Coord{0, floor}, p.Pos)
}

func TestFluidColumnSpreadsAcrossFloor(t *testing.T) {
	s, _ := newTestState(t, 3)
	floor := -s.Grid.Limit()
	a := spawn(t, s, Water, 0, floor)
	b := spawn(t, s, Water, 0, floor+1)
	c := spawn(t, s, Water, 0, floor+2)

	Fluid(s)
	assert.Equal(t, Coord{1, floor}, a.Pos)
	assert.Equal(t, Coord{0, floor}, b.Pos)
	assert.Equal(t, Coord{0, floor + 1}, c.Pos)

	for i := 0; i < 10; i++ {
		Fluid(s)
		requireConsistent(t, s)
	}
	for _, p := range []*Particle{a, b, c} {
		require.Equal(t, floor, p.Pos.Y, "particle %d", p.ID)
	}
}
