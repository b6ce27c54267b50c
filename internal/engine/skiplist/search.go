package skiplist

// pathSnapshot is the per-level predecessor and rank snapshot produced by
// findByOffset, reused directly by insert/erase/split so mutators never
// need a second top-down walk.
type pathSnapshot struct {
	predecessors []*node
	ranks        []int
}

// findByOffset walks the skip list from head looking for the node that
// contains logical position pos, filling snapshot with, for every level,
// the last node reached before stepping past pos and the accumulated offset
// just past that node's content.
//
// The returned target is nil only when the list is empty. At pos == total
// size (the append/end position) target is the last node and localOffset
// equals its size; otherwise target is the node containing pos and
// localOffset is pos's offset within that node.
//
// Boundary normalization: if pos lands exactly on the boundary between two
// nodes, the coarse per-level search can return a node whose size equals
// localOffset, which is not a valid index into that node's leaf. This
// implementation walks forward past such nodes and, for every level the
// skipped node itself participates in (0 through target.level-1), promotes
// it to predecessor and updates that level's rank to the accumulated offset
// just past it — so the returned snapshot always reflects the true
// predecessor of target at every level, not a stale node one or more steps
// behind it. A forward-only walk can only ever discover a node as a
// predecessor at the levels that node itself occupies; higher levels keep
// whatever predecessor the per-level descent above already found, which
// remains correct since the skipped node never participated there.
func (s *Sequence) findByOffset(pos int) (target *node, localOffset int, snap pathSnapshot) {
	snap.predecessors = make([]*node, s.cfg.maxLevel)
	snap.ranks = make([]int, s.cfg.maxLevel)

	x := s.head
	accumulated := 0

	for i := s.cfg.maxLevel - 1; i >= 0; i-- {
		for x.next[i] != nil && accumulated+x.span[i] < pos {
			accumulated += x.span[i]
			x = x.next[i]
		}
		snap.predecessors[i] = x
		snap.ranks[i] = accumulated
	}

	target = x.next[0]
	if target == nil {
		return nil, 0, snap
	}

	localOffset = pos - accumulated
	for target != nil && localOffset >= target.contentSize() {
		if target.next[0] == nil {
			break
		}
		size := target.contentSize()
		accumulated += size
		for j := 0; j < target.level; j++ {
			snap.predecessors[j] = target
			snap.ranks[j] = accumulated
		}
		target = target.next[0]
		localOffset = pos - accumulated
	}
	return target, localOffset, snap
}
