package handlers

import (
	"math/rand/v2"
	"sync"
)

// SeedSource hands out maze seeds to concurrent requests.
type SeedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSeedSource(rnd *rand.Rand) *SeedSource {
	return &SeedSource{rnd: rnd}
}

func (s *SeedSource) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Uint64()
}
