package skiplist

import "github.com/mazzuchi/bimodaltext/internal/engine/leaf"

// Sequence is a mutable, randomly indexable sequence of bytes backed by a
// bi-modal indexed skip list. It is single-owner: it holds no lock and
// must not be shared across goroutines without external synchronization.
type Sequence struct {
	cfg   *config
	head  *node
	total int
}

// New constructs an empty Sequence.
func New(opts ...Option) *Sequence {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Sequence{
		cfg:  cfg,
		head: newSentinel(cfg.maxLevel),
	}
}

func newSentinel(maxLevel int) *node {
	return &node{
		next:  make([]*node, maxLevel),
		span:  make([]int, maxLevel),
		level: maxLevel,
	}
}

// Len returns the total number of bytes held.
func (s *Sequence) Len() int {
	return s.total
}

// At returns the byte at logical position pos. It returns ErrOutOfRange if
// pos is not a valid index (pos must satisfy 0 <= pos < Len()).
func (s *Sequence) At(pos int) (byte, error) {
	if pos < 0 || pos >= s.total {
		return 0, ErrOutOfRange
	}
	target, localOffset, _ := s.findByOffset(pos)
	if target == nil {
		return 0, wrapCorruption("At: nil target within bounds")
	}
	return target.data.At(localOffset), nil
}

// Clear empties the sequence in place. The head sentinel is reused, not
// reallocated.
func (s *Sequence) Clear() {
	for i := range s.head.next {
		s.head.next[i] = nil
		s.head.span[i] = 0
	}
	s.total = 0
}

// newLeafNode builds a fresh node at the given level, holding a new gap
// leaf seeded with content.
func (s *Sequence) newLeafNode(level int, content []byte) *node {
	n := s.cfg.pool.get(level)
	g := leaf.NewGapLeaf(len(content)+s.cfg.gapSize, s.cfg.gapSize)
	g.Insert(0, content, s.cfg.gapSize)
	n.data = leaf.NewGap(g)
	return n
}
