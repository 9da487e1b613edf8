package core

import "math/rand/v2"

// RNG wraps a PCG source so a run can be replayed from its seed.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	g := &RNG{}
	g.Seed(seed)
	return g
}

// Seed restarts the sequence from seed.
func (r *RNG) Seed(seed int64) {
	r.seed = seed
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// SeedValue returns the seed the current sequence started from.
func (r *RNG) SeedValue() int64 { return r.seed }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
