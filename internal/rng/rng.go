// Package rng provides the seeded random stream that drives every draw
// of an episode. Map generation, placement, and guardian movement all
// pull from one Stream, so a seed fully determines an episode.
package rng

import "math/rand"

// Stream wraps math/rand.Rand seeded once per episode. Two streams
// created with the same seed produce identical draw sequences.
type Stream struct {
	seed int64
	src  *rand.Rand
}

// New creates a deterministic stream from a seed.
func New(seed int64) *Stream {
	return &Stream{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	return s.src.Intn(n)
}

// IntBetween returns a random int in [lo, hi], both ends inclusive.
// Panics if hi < lo.
func (s *Stream) IntBetween(lo, hi int) int {
	return lo + s.src.Intn(hi-lo+1)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return s.src.Float64()
}

// Shuffle pseudo-randomizes the order of n elements through swap.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.src.Shuffle(n, swap)
}

// Perm returns a pseudo-random permutation of the integers [0, n).
func (s *Stream) Perm(n int) []int {
	return s.src.Perm(n)
}

// SampleIndices returns k distinct indices drawn without replacement
// from [0, n), in draw order. It uses a partial Fisher-Yates shuffle so
// only k draws are consumed from the stream. Panics if k < 0 or k > n.
func (s *Stream) SampleIndices(n, k int) []int {
	if k < 0 || k > n {
		panic("rng: SampleIndices k out of range")
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.src.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
