package sand

import "image/color"

var sandPalette = []color.RGBA{
	Empty:    {R: 0, G: 0, B: 0, A: 0},
	Boundary: {R: 38, G: 38, B: 38, A: 255},
	Sand:     {R: 194, G: 164, B: 96, A: 255},
	Stone:    {R: 120, G: 120, B: 128, A: 255},
	Water:    {R: 52, G: 104, B: 200, A: 255},
}

// Palette maps display codes, which are Material values, to colors.
func (w *World) Palette() []color.RGBA { return sandPalette }

// Cells rebuilds and returns the display buffer. Each byte is the Material
// at that position; the outer ring is the wall and row 0 is the top.
func (w *World) Cells() []uint8 {
	w.rebuildDisplay()
	return w.display.Cells()
}

// DisplayPos converts a world coordinate into display column and row.
func (w *World) DisplayPos(x, y int) (int, int) {
	b := w.state.Grid.Boundary()
	return x + b, b - y
}

// WorldPos converts a display column and row into a world coordinate.
func (w *World) WorldPos(col, row int) (int, int) {
	b := w.state.Grid.Boundary()
	return col - b, b - row
}

func (w *World) rebuildDisplay() {
	w.display.Fill(uint8(Boundary))
	g := w.state.Grid
	limit := g.Limit()
	for y := -limit; y <= limit; y++ {
		for x := -limit; x <= limit; x++ {
			m, err := g.ElementAt(x, y)
			if err != nil {
				continue
			}
			col, row := w.DisplayPos(x, y)
			w.display.Set(col, row, uint8(m))
		}
	}
}
