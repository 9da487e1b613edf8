//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"particles/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay outlines the brush footprint under the cursor.
type Overlay struct {
	world *sand.World
	scale int
	show  bool
	pixel *ebiten.Image

	cursor image.Point
	inside bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world *sand.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor and toggles the outline with B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	mx, my := ebiten.CursorPosition()
	o.cursor = image.Pt(mx/scale, my/scale)
	size := o.world.Size()
	o.inside = mx >= 0 && my >= 0 && o.cursor.X < size.W && o.cursor.Y < size.H
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.inside {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	r := BrushFootprint(o.cursor.X, o.cursor.Y, o.world.Brush())
	x0, y0 := float64(r.Min.X*scale), float64(r.Min.Y*scale)
	w, h := float64(r.Dx()*scale), float64(r.Dy()*scale)
	col := color.RGBA{R: 240, G: 240, B: 240, A: 160}
	if o.world.Placing() == sand.Empty {
		col = color.RGBA{R: 230, G: 80, B: 80, A: 180}
	}
	o.drawRect(screen, x0, y0, w, 1, col)
	o.drawRect(screen, x0, y0+h-1, w, 1, col)
	o.drawRect(screen, x0, y0, 1, h, col)
	o.drawRect(screen, x0+w-1, y0, 1, h, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
