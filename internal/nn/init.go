package nn

import (
	"math/rand"
	"time"
)

// Uniform returns n values drawn independently from U(lo, hi) using rng.
func Uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = lo + rng.Float64()*(hi-lo)
	}
	return v
}

// newRand returns a time-seeded source for callers that did not supply one.
func newRand() *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
