package sand

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidBrushSize reports a brush size name outside the known set.
var ErrInvalidBrushSize = errors.New("sand: invalid brush size")

// BrushSize selects one of five square brush footprints.
type BrushSize uint8

const (
	BrushSmall BrushSize = iota
	BrushMedium
	BrushLarge
	BrushXLarge
	BrushXXLarge
)

var brushNames = [...]string{"small", "medium", "large", "xlarge", "xxlarge"}

// Delta returns the half-width of the brush square.
func (b BrushSize) Delta() int {
	if b > BrushXXLarge {
		return int(BrushXXLarge)
	}
	return int(b)
}

// Side returns the edge length of the brush square, 2*delta+1.
func (b BrushSize) Side() int { return 2*b.Delta() + 1 }

// Grow returns the next larger size, saturating at BrushXXLarge.
func (b BrushSize) Grow() BrushSize {
	if b >= BrushXXLarge {
		return BrushXXLarge
	}
	return b + 1
}

// Shrink returns the next smaller size, saturating at BrushSmall.
func (b BrushSize) Shrink() BrushSize {
	if b == BrushSmall || b > BrushXXLarge {
		return BrushSmall
	}
	return b - 1
}

func (b BrushSize) String() string {
	if b > BrushXXLarge {
		return fmt.Sprintf("brush(%d)", uint8(b))
	}
	return brushNames[b]
}

// ParseBrushSize resolves a brush size by name.
func ParseBrushSize(name string) (BrushSize, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range brushNames {
		if n == name {
			return BrushSize(i), nil
		}
	}
	return BrushSmall, fmt.Errorf("%w: %q", ErrInvalidBrushSize, name)
}

// BrushCoordinates returns every coordinate covered by a brush centred on
// (cx, cy), rounded to the nearest cell, in row-major order. It does not
// filter by boundary or occupancy.
func BrushCoordinates(cx, cy float64, size BrushSize) []Coord {
	x := int(math.Round(cx))
	y := int(math.Round(cy))
	d := size.Delta()
	out := make([]Coord, 0, size.Side()*size.Side())
	for py := y - d; py <= y+d; py++ {
		for px := x - d; px <= x+d; px++ {
			out = append(out, Coord{X: px, Y: py})
		}
	}
	return out
}
