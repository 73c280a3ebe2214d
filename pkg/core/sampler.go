package core

import "math/rand"

// Sampler produces the pseudo-random decisions of a render. Every parallel
// task derives its own sampler via Clone so random streams never interfere;
// the derived state is a pure function of the parent seed and the stream
// index, which keeps renders reproducible regardless of scheduling order.
type Sampler interface {
	Next() float64
	Next2D() Vec2
	Clone(stream int64) Sampler
	SamplesPerPixel() int
}

// IndependentSampler draws independent uniform variates from a seeded
// pseudo-random generator
type IndependentSampler struct {
	rng  *rand.Rand
	seed int64
	spp  int
}

// NewIndependentSampler creates a sampler with the given seed and per-pixel
// sample count
func NewIndependentSampler(seed int64, samplesPerPixel int) *IndependentSampler {
	return &IndependentSampler{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		spp:  samplesPerPixel,
	}
}

// Next returns a uniform variate in [0, 1)
func (s *IndependentSampler) Next() float64 {
	return s.rng.Float64()
}

// Next2D returns two uniform variates in [0, 1)
func (s *IndependentSampler) Next2D() Vec2 {
	return NewVec2(s.rng.Float64(), s.rng.Float64())
}

// Clone returns an independent sampler for the given stream index
func (s *IndependentSampler) Clone(stream int64) Sampler {
	return NewIndependentSampler(mixSeed(s.seed, stream), s.spp)
}

// SamplesPerPixel returns the configured per-pixel sample count
func (s *IndependentSampler) SamplesPerPixel() int {
	return s.spp
}

// mixSeed decorrelates nearby seed/stream pairs with an xor-multiply hash,
// so consecutive tile indices do not produce correlated generators
func mixSeed(seed, stream int64) int64 {
	h := uint64(seed)*0x6C8E9CF5 ^ uint64(stream+1)*0xB5297A4D
	h ^= h >> 16
	h *= 0x7FEB352D
	h ^= h >> 15
	h *= 0x846CA68B
	h ^= h >> 16
	return int64(h)
}
