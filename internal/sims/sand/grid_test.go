package sand

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBijection(t *testing.T) {
	for _, b := range []int{2, 5, 65} {
		g := NewGrid(b)
		require.Equal(t, 2*b-1, g.Width())
		require.Equal(t, g.Width()*g.Width(), g.Len())

		seen := make([]bool, g.Len())
		limit := b - 1
		for y := -limit; y <= limit; y++ {
			for x := -limit; x <= limit; x++ {
				idx, err := g.Index(x, y)
				require.NoError(t, err)
				require.False(t, seen[idx], "index %d hit twice (B=%d)", idx, b)
				seen[idx] = true

				back, err := g.CoordOf(idx)
				require.NoError(t, err)
				require.Equal(t, Coord{X: x, Y: y}, back)
			}
		}
		for idx, ok := range seen {
			require.True(t, ok, "index %d never produced (B=%d)", idx, b)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	g := NewGrid(5)
	for _, c := range []Coord{{5, 0}, {-5, 0}, {0, 5}, {0, -5}, {100, 100}} {
		_, err := g.ElementAt(c.X, c.Y)
		require.True(t, errors.Is(err, ErrOutOfBounds), "ElementAt%v", c)

		var be *BoundsError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, c.X, be.X)
		assert.Equal(t, c.Y, be.Y)

		assert.ErrorIs(t, g.SetElement(c.X, c.Y, Sand), ErrOutOfBounds)
		assert.ErrorIs(t, g.SetVisual(c.X, c.Y, 1), ErrOutOfBounds)
		assert.ErrorIs(t, g.SetCell(c.X, c.Y, Cell{Material: Sand}), ErrOutOfBounds)
		assert.ErrorIs(t, g.ClearVisual(c.X, c.Y), ErrOutOfBounds)
		_, err = g.VisualAt(c.X, c.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.False(t, g.IsEmpty(c.X, c.Y))
	}
	_, err := g.CoordOf(g.Len())
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestEmptyCellHoldsNoVisual(t *testing.T) {
	g := NewGrid(4)
	require.NoError(t, g.SetCell(1, 1, Cell{Material: Sand, Visual: 7}))

	h, err := g.VisualAt(1, 1)
	require.NoError(t, err)
	require.Equal(t, Handle(7), h)

	require.NoError(t, g.SetElement(1, 1, Empty))
	h, err = g.VisualAt(1, 1)
	require.NoError(t, err)
	require.Equal(t, NoHandle, h)

	require.NoError(t, g.SetCell(0, 0, Cell{Material: Empty, Visual: 9}))
	h, err = g.VisualAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, NoHandle, h)
}

func TestGridMoveIsAllOrNothing(t *testing.T) {
	g := NewGrid(4)
	require.NoError(t, g.SetCell(0, 0, Cell{Material: Sand, Visual: 3}))
	require.NoError(t, g.SetCell(0, -1, Cell{Material: Stone, Visual: 4}))

	require.Error(t, g.Move(Coord{0, 0}, Coord{0, -1}))
	src, _ := g.CellAt(0, 0)
	dst, _ := g.CellAt(0, -1)
	require.Equal(t, Cell{Material: Sand, Visual: 3}, src)
	require.Equal(t, Cell{Material: Stone, Visual: 4}, dst)

	require.ErrorIs(t, g.Move(Coord{0, 0}, Coord{0, 10}), ErrOutOfBounds)
	src, _ = g.CellAt(0, 0)
	require.Equal(t, Sand, src.Material)

	require.NoError(t, g.Move(Coord{0, 0}, Coord{1, 0}))
	src, _ = g.CellAt(0, 0)
	dst, _ = g.CellAt(1, 0)
	require.Equal(t, Cell{}, src)
	require.Equal(t, Cell{Material: Sand, Visual: 3}, dst)
}

func TestGridCountAndClear(t *testing.T) {
	g := NewGrid(3)
	require.NoError(t, g.SetElement(0, 0, Water))
	require.NoError(t, g.SetElement(1, 0, Water))
	require.NoError(t, g.SetElement(-1, 0, Stone))
	require.Equal(t, 2, g.Count(Water))
	require.Equal(t, g.Len()-3, g.Count(Empty))

	g.Clear()
	require.Equal(t, g.Len(), g.Count(Empty))
}

func TestMaterialKinds(t *testing.T) {
	cases := map[Material]Kind{
		Empty:    KindEmpty,
		Boundary: KindImmovable,
		Sand:     KindFalling,
		Stone:    KindStatic,
		Water:    KindFluid,
	}
	for m, k := range cases {
		assert.Equal(t, k, m.Kind(), m.String())
	}
	assert.False(t, Boundary.Paintable())
	assert.True(t, Empty.Paintable())
	assert.True(t, Sand.Thinned())
	assert.False(t, Water.Thinned())

	for _, m := range Materials() {
		parsed, err := ParseMaterial(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMaterial("lava")
	assert.ErrorIs(t, err, ErrInvalidMaterial)
	assert.False(t, Material(42).Valid())
}
