package skiplist

import "math/rand/v2"

// Source is the uniform random source the level generator consumes. It is
// the sequence's sole external collaborator beyond its allocator; a
// Sequence never creates entropy itself beyond what Source supplies, so
// tests can inject a fixed-sequence fake for reproducibility.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// defaultSource wraps math/rand/v2's PCG-backed generator.
type defaultSource struct {
	r *rand.Rand
}

func newDefaultSource() *defaultSource {
	return &defaultSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *defaultSource) Float64() float64 {
	return s.r.Float64()
}

// randomLevel draws a node level in [1, maxLevel], geometrically
// distributed with parameter p: each additional level is accepted with
// probability p.
func randomLevel(src Source, p float64, maxLevel int) int {
	lvl := 1
	for src.Float64() < p && lvl < maxLevel {
		lvl++
	}
	return lvl
}
