package render

import (
	"particles/internal/core"
	"particles/internal/sims/sand"
)

// Sprite is the host-side renderable mirroring one grid occupant.
type Sprite struct {
	Material sand.Material
	X, Y     int
	Shade    uint8
}

// Sprites implements sand.Visuals with a flat sprite table. Each sprite
// picks its shade once at spawn so the texture travels with the grain.
type Sprites struct {
	next    sand.Handle
	sprites map[sand.Handle]Sprite
	rng     *core.RNG
}

// NewSprites returns an empty table whose shade choices replay from seed.
func NewSprites(seed int64) *Sprites {
	return &Sprites{sprites: make(map[sand.Handle]Sprite), rng: core.NewRNG(seed)}
}

// Spawn allocates a sprite for m at (x, y).
func (s *Sprites) Spawn(m sand.Material, x, y int) sand.Handle {
	s.next++
	sp := Sprite{Material: m, X: x, Y: y}
	if n := shadeCount(m); n > 1 {
		sp.Shade = uint8(s.rng.IntN(n))
	}
	s.sprites[s.next] = sp
	return s.next
}

// Despawn forgets the sprite behind h.
func (s *Sprites) Despawn(h sand.Handle) {
	delete(s.sprites, h)
}

// Reposition moves the sprite behind h to (x, y).
func (s *Sprites) Reposition(h sand.Handle, x, y int) {
	sp, ok := s.sprites[h]
	if !ok {
		return
	}
	sp.X, sp.Y = x, y
	s.sprites[h] = sp
}

// Get returns the sprite behind h.
func (s *Sprites) Get(h sand.Handle) (Sprite, bool) {
	sp, ok := s.sprites[h]
	return sp, ok
}

// Len returns the number of live sprites.
func (s *Sprites) Len() int { return len(s.sprites) }

// Each calls fn for every live sprite in unspecified order.
func (s *Sprites) Each(fn func(sand.Handle, Sprite)) {
	for h, sp := range s.sprites {
		fn(h, sp)
	}
}
