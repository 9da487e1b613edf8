package sand

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a coordinate outside the addressable grid.
var ErrOutOfBounds = errors.New("sand: coordinate out of bounds")

// BoundsError carries the offending coordinate of an out-of-bounds access.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sand: coordinate (%d,%d) out of bounds", e.X, e.Y)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// Coord is an integer world coordinate. The origin is the centre of the
// world and y grows upwards.
type Coord struct {
	X, Y int
}

// Cell is one addressable grid slot.
type Cell struct {
	Material Material
	Visual   Handle
}

// Grid stores every placeable cell inside the boundary walls in a flat
// row-major slice. Walls sit at |coord| == boundary and are not stored.
type Grid struct {
	boundary int
	width    int
	cells    []Cell
}

// NewGrid allocates an empty grid for the given boundary radius.
func NewGrid(boundary int) *Grid {
	if boundary < 2 {
		boundary = 2
	}
	width := 2*boundary - 1
	return &Grid{boundary: boundary, width: width, cells: make([]Cell, width*width)}
}

// Boundary returns the wall radius B.
func (g *Grid) Boundary() int { return g.boundary }

// Width returns the number of cells per row, 2B-1.
func (g *Grid) Width() int { return g.width }

// Limit returns the largest addressable absolute coordinate, B-1.
func (g *Grid) Limit() int { return g.boundary - 1 }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) is strictly inside the walls.
func (g *Grid) InBounds(x, y int) bool {
	limit := g.boundary - 1
	return x >= -limit && x <= limit && y >= -limit && y <= limit
}

// Index maps (x, y) to its slice index.
func (g *Grid) Index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, &BoundsError{X: x, Y: y}
	}
	r := g.boundary - 1
	return (x + r) + g.width*(y+r), nil
}

// CoordOf is the inverse of Index.
func (g *Grid) CoordOf(idx int) (Coord, error) {
	if idx < 0 || idx >= len(g.cells) {
		return Coord{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, idx)
	}
	r := g.boundary - 1
	return Coord{X: idx%g.width - r, Y: idx/g.width - r}, nil
}

// ElementAt returns the material at (x, y).
func (g *Grid) ElementAt(x, y int) (Material, error) {
	idx, err := g.Index(x, y)
	if err != nil {
		return Empty, err
	}
	return g.cells[idx].Material, nil
}

// VisualAt returns the visual handle stored at (x, y).
func (g *Grid) VisualAt(x, y int) (Handle, error) {
	idx, err := g.Index(x, y)
	if err != nil {
		return NoHandle, err
	}
	return g.cells[idx].Visual, nil
}

// CellAt returns the full cell at (x, y).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	idx, err := g.Index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[idx], nil
}

// SetElement replaces the material at (x, y). Setting Empty also drops the
// visual so an empty cell never holds one.
func (g *Grid) SetElement(x, y int, m Material) error {
	idx, err := g.Index(x, y)
	if err != nil {
		return err
	}
	g.cells[idx].Material = m
	if m == Empty {
		g.cells[idx].Visual = NoHandle
	}
	return nil
}

// SetVisual replaces the visual handle at (x, y).
func (g *Grid) SetVisual(x, y int, h Handle) error {
	idx, err := g.Index(x, y)
	if err != nil {
		return err
	}
	g.cells[idx].Visual = h
	return nil
}

// SetCell replaces the whole cell at (x, y).
func (g *Grid) SetCell(x, y int, c Cell) error {
	idx, err := g.Index(x, y)
	if err != nil {
		return err
	}
	if c.Material == Empty {
		c.Visual = NoHandle
	}
	g.cells[idx] = c
	return nil
}

// ClearVisual drops the visual handle at (x, y).
func (g *Grid) ClearVisual(x, y int) error {
	return g.SetVisual(x, y, NoHandle)
}

// IsEmpty reports whether (x, y) is inside the walls and unoccupied.
// Out-of-bounds coordinates count as occupied by the wall.
func (g *Grid) IsEmpty(x, y int) bool {
	m, err := g.ElementAt(x, y)
	return err == nil && m == Empty
}

// Move relocates the cell at from into the empty cell at to in one step.
// Neither slot is touched unless both are valid and the target is empty.
func (g *Grid) Move(from, to Coord) error {
	src, err := g.Index(from.X, from.Y)
	if err != nil {
		return err
	}
	dst, err := g.Index(to.X, to.Y)
	if err != nil {
		return err
	}
	if src == dst {
		return nil
	}
	if g.cells[dst].Material != Empty {
		return fmt.Errorf("sand: move target (%d,%d) occupied by %s", to.X, to.Y, g.cells[dst].Material)
	}
	g.cells[dst] = g.cells[src]
	g.cells[src] = Cell{}
	return nil
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Count returns how many cells hold m.
func (g *Grid) Count(m Material) int {
	n := 0
	for _, c := range g.cells {
		if c.Material == m {
			n++
		}
	}
	return n
}
