//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpritePainter uploads the sprite table into a single image each frame.
type SpritePainter struct {
	boundary int
	side     int
	img      *ebiten.Image
	buf      []byte
}

// NewSpritePainter allocates a painter for a world of radius boundary.
func NewSpritePainter(boundary int) *SpritePainter {
	side := 2*boundary + 1
	return &SpritePainter{
		boundary: boundary,
		side:     side,
		img:      ebiten.NewImage(side, side),
		buf:      make([]byte, 4*side*side),
	}
}

// Blit rasterizes sprites and draws them scaled onto dst.
func (p *SpritePainter) Blit(dst *ebiten.Image, sprites *Sprites, scale int) {
	sprites.Rasterize(p.buf, p.boundary)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Side returns the edge length of the painted square in cells.
func (p *SpritePainter) Side() int { return p.side }
