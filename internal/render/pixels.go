package render

import (
	"image"
	"image/color"

	"particles/internal/core"
)

// fillSolidRGBA paints every pixel in buf with c.
func fillSolidRGBA(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Rasterize draws every sprite into buf, an RGBA buffer for the square
// world of radius boundary with walls included and y growing upwards.
// Sprites outside the square are dropped.
func (s *Sprites) Rasterize(buf []byte, boundary int) {
	side := 2*boundary + 1
	if len(buf) < 4*side*side {
		return
	}
	fillSolidRGBA(buf[:4*side*side], background)
	for _, sp := range s.sprites {
		col := sp.X + boundary
		row := boundary - sp.Y
		if col < 0 || col >= side || row < 0 || row >= side {
			continue
		}
		c := ColorOf(sp)
		base := 4 * (row*side + col)
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Snapshot renders a display buffer into an image using palette.
func Snapshot(cells []uint8, size core.Size, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	if len(cells) != size.W*size.H {
		return img
	}
	fillPaletteRGBA(img.Pix, cells, palette)
	return img
}
