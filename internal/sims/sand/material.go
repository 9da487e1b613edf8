package sand

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMaterial reports a material name outside the known set.
var ErrInvalidMaterial = errors.New("sand: invalid material")

// Material enumerates the substances a cell can hold.
type Material uint8

const (
	Empty Material = iota
	Boundary
	Sand
	Stone
	Water

	materialCount
)

// Kind is the static behavioural class of a material.
type Kind uint8

const (
	KindEmpty Kind = iota
	// KindImmovable is the world wall.
	KindImmovable
	// KindFalling materials are pulled down by gravity and slide diagonally.
	KindFalling
	// KindStatic materials stay where they were painted.
	KindStatic
	// KindFluid materials flow down and disperse sideways.
	KindFluid
)

var materialNames = [materialCount]string{
	Empty:    "empty",
	Boundary: "boundary",
	Sand:     "sand",
	Stone:    "stone",
	Water:    "water",
}

// Materials lists every material in declaration order.
func Materials() []Material {
	return []Material{Empty, Boundary, Sand, Stone, Water}
}

// Kind returns the behavioural class of m.
func (m Material) Kind() Kind {
	switch m {
	case Boundary:
		return KindImmovable
	case Sand:
		return KindFalling
	case Stone:
		return KindStatic
	case Water:
		return KindFluid
	default:
		return KindEmpty
	}
}

// Paintable reports whether m can be chosen as the active brush material.
// Empty is the erase tool.
func (m Material) Paintable() bool {
	switch m {
	case Empty, Sand, Stone, Water:
		return true
	}
	return false
}

// Thinned reports whether brush strokes of m are randomly thinned.
func (m Material) Thinned() bool { return m == Sand }

// Valid reports whether m is one of the declared materials.
func (m Material) Valid() bool { return m < materialCount }

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialNames[m]
}

// ParseMaterial resolves a material by its lowercase name.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidMaterial, name)
}

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindImmovable:
		return "immovable"
	case KindFalling:
		return "falling"
	case KindStatic:
		return "static"
	case KindFluid:
		return "fluid"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}
