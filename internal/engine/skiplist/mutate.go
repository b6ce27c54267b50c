package skiplist

import "github.com/mazzuchi/bimodaltext/internal/engine/leaf"

// Insert writes data at logical position pos, shifting everything at or
// after pos forward. pos == Len() is valid and appends. Insert of an empty
// slice is a no-op.
//
// Large slices are inserted in runs of at most the node-max-size so that a
// single split always suffices to bring the receiving node back under the
// threshold: a node holds at most nodeMaxSize bytes before the run lands,
// at most 2*nodeMaxSize after, and each half of the split is back within
// bounds. One huge paste therefore never leaves an oversized node behind.
func (s *Sequence) Insert(pos int, data []byte) error {
	if pos < 0 || pos > s.total {
		return ErrOutOfRange
	}
	for len(data) > 0 {
		run := data
		if len(run) > s.cfg.nodeMaxSize {
			run = run[:s.cfg.nodeMaxSize]
		}
		s.insertRun(pos, run)
		pos += len(run)
		data = data[len(run):]
	}
	return nil
}

// insertRun places one bounded run of bytes. len(run) is at most
// nodeMaxSize and at least 1; pos is already validated.
func (s *Sequence) insertRun(pos int, run []byte) {
	target, localOffset, snap := s.findByOffset(pos)

	if target == nil {
		// Empty list: bootstrap the first node directly under head. Levels
		// the node does not reach keep the distance-to-end bookkeeping: a
		// nil forward link's span counts the bytes between that node's end
		// and the end of the sequence, so every head slot starts at the
		// full length.
		level := randomLevel(s.cfg.source, s.cfg.p, s.cfg.maxLevel)
		n := s.newLeafNode(level, run)
		for i := 0; i < s.cfg.maxLevel; i++ {
			if i < level {
				s.head.next[i] = n
			}
			s.head.span[i] = len(run)
		}
		s.total += len(run)
		return
	}

	if target.data.Kind == leaf.KindCompact {
		target.data = leaf.Expand(target.data, s.cfg.gapSize)
	}
	target.data.Gap.Insert(localOffset, run, s.cfg.gapSize)

	for i := 0; i < s.cfg.maxLevel; i++ {
		if snap.predecessors[i] != nil {
			snap.predecessors[i].span[i] += len(run)
		}
	}
	s.total += len(run)

	if target.contentSize() > s.cfg.nodeMaxSize {
		s.splitNode(target, snap)
	}
}

// Erase removes n bytes starting at logical position pos. If pos+n
// overruns the sequence's length, n is clamped to what remains; pos at or
// past the end is a silent no-op rather than an error. Erase
// returns ErrOutOfRange only for a negative pos. Erase of n <= 0 is a
// no-op.
func (s *Sequence) Erase(pos, n int) error {
	if pos < 0 {
		return ErrOutOfRange
	}
	if n <= 0 || pos >= s.total {
		return nil
	}
	if pos+n > s.total {
		n = s.total - pos
	}

	remaining := n
	for remaining > 0 {
		target, localOffset, snap := s.findByOffset(pos)
		if target == nil {
			return wrapCorruption("Erase: nil target within bounds")
		}

		if target.data.Kind == leaf.KindCompact {
			target.data = leaf.Expand(target.data, s.cfg.gapSize)
		}

		avail := target.contentSize() - localOffset
		chunk := remaining
		if chunk > avail {
			chunk = avail
		}

		target.data.Gap.Erase(localOffset, chunk)
		for i := 0; i < s.cfg.maxLevel; i++ {
			if snap.predecessors[i] != nil {
				snap.predecessors[i].span[i] -= chunk
			}
		}
		s.total -= chunk
		remaining -= chunk

		if target.contentSize() == 0 {
			s.removeNode(target, snap)
		}
	}
	return nil
}

// removeNode unlinks an emptied node from every level it participates in,
// folding its remaining forward distance into its predecessors. The erase
// that emptied the node already subtracted the erased bytes from every
// predecessor span, so only the fold remains. A predecessor whose link at
// some level passes over the node rather than landing on it needs no
// update at all: the bytes it jumps are unchanged.
func (s *Sequence) removeNode(n *node, snap pathSnapshot) {
	for i := 0; i < s.cfg.maxLevel; i++ {
		pred := snap.predecessors[i]
		if pred == nil || i >= len(pred.next) || pred.next[i] != n {
			continue
		}
		pred.next[i] = n.next[i]
		pred.span[i] += n.span[i]
	}
	s.cfg.pool.put(n)
}
