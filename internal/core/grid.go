package core

// ByteGrid is a row-major display buffer of byte-sized cell codes. Row 0 is
// the top of the picture.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for column x, row y.
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether column x, row y lies inside the grid.
func (g *ByteGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set stores v at column x, row y. Out-of-range writes are dropped.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.Contains(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// At returns the value at column x, row y, or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.Contains(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }
