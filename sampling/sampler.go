// Package sampling provides the random request generators used by the
// contention simulation.
package sampling

import (
	"log"
	"math"
	"math/rand"
)

// A Sampler draws module indices and normally distributed values.
type Sampler interface {
	// UniformModuleIndex returns an index in [0, numModules), uniformly
	// distributed.
	UniformModuleIndex(numModules int) int

	// NormalValue returns a sample of Normal(mean, stdDev).
	NormalValue(mean, stdDev float64) float64

	// Seed returns the seed the sampler was created with.
	Seed() int64
}

// PolarSampler generates normal values with the Marsaglia polar method.
// Each rejection loop yields two independent standard normal values. The
// first is returned right away and the second is kept for the next call, so
// consecutive calls always receive the two halves of one pair.
//
// A PolarSampler is not safe for concurrent use.
type PolarSampler struct {
	rand *rand.Rand
	seed int64

	hasSpare bool
	spare    float64
}

// NewPolarSampler creates a sampler seeded with the given seed.
func NewPolarSampler(seed int64) *PolarSampler {
	return &PolarSampler{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the sampler was created with.
func (s *PolarSampler) Seed() int64 {
	return s.seed
}

// UniformModuleIndex returns an index in [0, numModules).
func (s *PolarSampler) UniformModuleIndex(numModules int) int {
	if numModules < 1 {
		log.Panicf("sampling: cannot pick among %d modules", numModules)
	}

	return s.rand.Intn(numModules)
}

// NormalValue returns a sample of Normal(mean, stdDev).
func (s *PolarSampler) NormalValue(mean, stdDev float64) float64 {
	return mean + stdDev*s.standardNormal()
}

func (s *PolarSampler) standardNormal() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}

	var u, v, sq float64
	for {
		u = s.rand.Float64()*2 - 1
		v = s.rand.Float64()*2 - 1
		sq = u*u + v*v

		if sq > 0 && sq < 1 {
			break
		}
	}

	mul := math.Sqrt(-2 * math.Log(sq) / sq)
	s.spare = v * mul
	s.hasSpare = true

	return u * mul
}
