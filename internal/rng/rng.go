// Package rng provides the seeded normal-variate streams that drive the
// stock and volatility shocks.
//
// Each [Stream] wraps a Mersenne Twister (MT19937) generator, so a given
// seed always yields the same sequence of draws. A [Source] bundles the two
// streams a run needs: the stock stream is seeded with the run seed and the
// volatility stream with seed+1.
package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// Normal draws standard normal variates.
type Normal interface {
	Normal() float64
}

type Stream struct {
	rnd *rand.Rand
}

func NewStream(seed uint64) *Stream {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return &Stream{rnd: rand.New(mt)}
}

// Normal returns the next N(0, 1) draw.
func (s *Stream) Normal() float64 {
	return s.rnd.NormFloat64()
}

// Source is the pair of independent streams consumed by one run (or, in
// independent mode, by one sample).
type Source struct {
	Stock *Stream
	Vol   *Stream
}

func NewSource(seed int64) *Source {
	return &Source{
		Stock: NewStream(uint64(seed)),
		Vol:   NewStream(uint64(seed) + 1),
	}
}

// Derive maps (seed, sample) to a well-mixed seed for a per-sample substream.
// MT19937 only consumes the low 32 bits of a seed, so the high half is folded
// in. Derived seeds are always even, so no stock stream can start on the seed
// of another sample's vol stream (derived+1).
func Derive(seed int64, sample int) int64 {
	// splitmix64 finalizer
	z := uint64(seed) + (uint64(sample)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	z ^= z >> 32
	return int64(z &^ 1)
}
