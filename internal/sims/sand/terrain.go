package sand

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// ridgeHeights returns a stone column height for every x in
// [-limit, limit], drawn from 1D perlin noise. Heights lie in [1, maxH].
func ridgeHeights(limit, maxH int, seed int64, roughness float64) []int {
	width := 2*limit + 1
	if maxH < 1 {
		maxH = 1
	}
	if roughness <= 0 {
		roughness = 2
	}
	noise := perlin.NewPerlin(roughness, 2, 3, seed)
	heights := make([]int, width)
	for i := range heights {
		n := noise.Noise1D(float64(i) / float64(width) * 4)
		h := int(math.Round((n + 1) / 2 * float64(maxH)))
		if h < 1 {
			h = 1
		}
		if h > maxH {
			h = maxH
		}
		heights[i] = h
	}
	return heights
}

func (w *World) ridgeMax() int {
	h := w.state.Grid.Boundary() / 3
	if h < 1 {
		h = 1
	}
	return h
}

// raiseRidge lays a stone ridge along the floor.
func (w *World) raiseRidge(seed int64) {
	g := w.state.Grid
	limit := g.Limit()
	heights := ridgeHeights(limit, w.ridgeMax(), seed, w.cfg.Params.TerrainRoughness)
	coords := make([]Coord, 0, len(heights)*2)
	for i, h := range heights {
		x := i - limit
		for dy := 0; dy < h; dy++ {
			coords = append(coords, Coord{X: x, Y: -limit + dy})
		}
	}
	Apply(w.state, Stone, coords)
}

// pourPool fills a block of water above the middle third of the ridge.
func (w *World) pourPool() {
	depth := w.cfg.Params.PoolDepth
	if depth <= 0 {
		return
	}
	g := w.state.Grid
	limit := g.Limit()
	half := g.Width() / 6
	bottom := -limit + w.ridgeMax() + 1
	coords := make([]Coord, 0, (2*half+1)*depth)
	for y := bottom; y < bottom+depth && y <= limit; y++ {
		for x := -half; x <= half; x++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	Apply(w.state, Water, coords)
}
