package domain

// Rand is the minimal source of randomness required by the stochastic
// operations of the engine (mutation, random genomes, random strings).
// It is satisfied by *rand.Rand from math/rand/v2.
//
// The engine never seeds or owns the generator; callers pass it into every
// stochastic call so that runs stay reproducible under a fixed seed.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}
