// Package rng provides the deterministic random stream used for world generation.
package rng

// DefaultSeed is the seed used when no other is configured.
const DefaultSeed uint32 = 777

// Rng is a 32-bit xorshift generator. The same seed always yields the same
// sequence. A zero seed is a fixed point and produces only zeros.
type Rng struct {
	state uint32
}

// New creates a generator seeded with seed.
func New(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Next advances the generator and returns the new state.
func (r *Rng) Next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// Range returns the next value reduced to [0, max). max must be non-zero.
func (r *Rng) Range(max uint32) uint32 {
	return r.Next() % max
}
