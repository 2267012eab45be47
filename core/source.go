package core

import "math/rand/v2"

// Source draws the next piece kind. Selection is uniform and independent
// per call; repeats are possible and there is no bag guarantee.
// Implementations need not be safe for concurrent use because transitions
// are serialized by the session owner.
type Source interface {
	Next() Kind
}

// NewSource returns a Source backed by the shared global generator.
func NewSource() Source {
	return globalSource{}
}

type globalSource struct{}

func (globalSource) Next() Kind {
	return Kind(rand.IntN(NumKinds))
}

// NewSeededSource returns a deterministic Source for reproducible games.
// Two sources with the same seed produce identical kind sequences.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

type seededSource struct {
	rng *rand.Rand
}

func (s *seededSource) Next() Kind {
	return Kind(s.rng.IntN(NumKinds))
}
