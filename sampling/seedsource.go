package sampling

import (
	"math/rand"
	"time"
)

// SeedSource hands out one fresh seed per simulation run. Two sources
// created with the same root seed produce the same seed sequence.
type SeedSource struct {
	rand *rand.Rand
	root int64
}

// NewSeedSource creates a SeedSource derived from the root seed.
func NewSeedSource(root int64) *SeedSource {
	return &SeedSource{
		rand: rand.New(rand.NewSource(root)),
		root: root,
	}
}

// NewTimeSeedSource creates a SeedSource rooted at the current wall-clock
// time.
func NewTimeSeedSource() *SeedSource {
	return NewSeedSource(time.Now().UnixNano())
}

// Root returns the root seed.
func (s *SeedSource) Root() int64 {
	return s.root
}

// Next returns the next seed.
func (s *SeedSource) Next() int64 {
	return s.rand.Int63()
}
