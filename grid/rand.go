package grid

import "math/rand/v2"

// Rand is the randomness the grid consumes
// Tests substitute a scripted source for exact sequences
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a seeded PCG source
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
