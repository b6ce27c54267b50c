package skiplist

import (
	"github.com/mazzuchi/bimodaltext/internal/engine/leaf"
	"go.uber.org/zap"
)

// Optimize performs two passes over the sequence: transmutation, converting
// every gap-mode leaf to compact mode, and defragmentation, merging each
// node with a following level-1 neighbor while their combined size still
// fits under the node-max-size.
//
// Defragmentation only absorbs a node's level-0 neighbor when that neighbor
// is itself a level-1 node. A taller neighbor has forward pointers landing
// on it from predecessors reachable only by walking down from above; a
// single forward pass at level 0 cannot find and relink them, so such a
// neighbor is left alone. The absorbing node's own predecessors, by
// contrast, have all been walked past already, so the pass carries a
// running predecessor snapshot and can repair every span the merge touches.
func (s *Sequence) Optimize() {
	for n := s.head.next[0]; n != nil; n = n.next[0] {
		n.data = leaf.Compact(n.data)
	}

	preds := make([]*node, s.cfg.maxLevel)
	for i := range preds {
		preds[i] = s.head
	}

	cur := s.head.next[0]
	for cur != nil && cur.next[0] != nil {
		neighbor := cur.next[0]
		if neighbor.level == 1 &&
			cur.contentSize()+neighbor.contentSize() <= s.cfg.nodeMaxSize {
			s.mergeInto(cur, neighbor, preds)
			continue
		}
		for i := 0; i < cur.level; i++ {
			preds[i] = cur
		}
		cur = cur.next[0]
	}
}

// mergeInto absorbs neighbor's content into cur and unlinks neighbor.
// neighbor must be a level-1 node directly following cur at level 0, and
// preds[i] must be the node whose level-i link lands on cur for every
// i < cur.level.
//
// Moving neighbor's bytes inside cur shifts them from "after cur" to "part
// of cur" in every span that distinguishes the two: links landing on cur
// grow by the absorbed length, cur's own forward links shrink by it, and
// cur's level-0 link takes over neighbor's forward distance wholesale.
// Links that jump both nodes cover the same bytes before and after and
// stay untouched.
func (s *Sequence) mergeInto(cur, neighbor *node, preds []*node) {
	absorbed := neighbor.contentSize()
	merged := cur.data.AppendTo(make([]byte, 0, cur.contentSize()+absorbed))
	merged = neighbor.data.AppendTo(merged)
	cur.data = leaf.NewCompact(leaf.NewCompactLeaf(merged))

	cur.next[0] = neighbor.next[0]
	cur.span[0] = neighbor.span[0]
	for i := 1; i < cur.level; i++ {
		cur.span[i] -= absorbed
	}
	for i := 0; i < cur.level; i++ {
		preds[i].span[i] += absorbed
	}

	s.cfg.logger.Debug("optimize_merge",
		zap.Int("merged_size", len(merged)),
		zap.Int("absorbed", absorbed),
	)

	s.cfg.pool.put(neighbor)
}
