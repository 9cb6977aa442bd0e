package sim

import "math/rand"

// Random is the randomness the simulation draws on for placement and spawn rolls.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a seeded source.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func uniform(rng Random, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func chance(rng Random, p float64) bool {
	return rng.Float64() < p
}
