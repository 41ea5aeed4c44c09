package sim

import "math/rand"

// RandomSource supplies uniform samples in [0, 1).
// Simulations take one as a dependency so runs can be replayed.
type RandomSource interface {
	Float64() float64
}

// Source is a seeded RandomSource. Two sources built from the same seed
// produce the same sequence.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// NewSource creates a source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns the next sample in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Reset rewinds the source to the start of its sequence.
func (s *Source) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Uniform draws a value in [min, max) from src.
func Uniform(src RandomSource, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}
