package render

import (
	"image/color"

	"particles/internal/sims/sand"
)

var (
	background  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	wallColor   = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	stoneColor  = color.RGBA{R: 120, G: 120, B: 128, A: 255}
	waterColor  = color.RGBA{R: 52, G: 104, B: 200, A: 255}
	sandColors  = []color.RGBA{{R: 194, G: 164, B: 96, A: 255}, {R: 168, G: 138, B: 78, A: 255}}
	unknownTint = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func shadeCount(m sand.Material) int {
	if m == sand.Sand {
		return len(sandColors)
	}
	return 1
}

// ColorOf returns the draw color for a sprite.
func ColorOf(sp Sprite) color.RGBA {
	switch sp.Material {
	case sand.Boundary:
		return wallColor
	case sand.Stone:
		return stoneColor
	case sand.Water:
		return waterColor
	case sand.Sand:
		return sandColors[int(sp.Shade)%len(sandColors)]
	case sand.Empty:
		return background
	}
	return unknownTint
}
