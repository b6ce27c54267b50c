package skiplist

import (
	"github.com/mazzuchi/bimodaltext/internal/engine/leaf"
	"go.uber.org/zap"
)

// splitNode splits an over-sized node u in half, inserting the new suffix
// node v immediately after u. snap is the predecessor snapshot produced by
// the insert that grew u past the node-max-size threshold.
//
// The new node's level is capped at u's own level: a forward-only pass
// cannot discover, let alone relink, predecessors at levels above the ones
// it descended through, so v can never participate at a level u doesn't
// already occupy.
func (s *Sequence) splitNode(u *node, snap pathSnapshot) {
	total := u.contentSize()
	suffixLen := total / 2
	if suffixLen == 0 {
		return
	}

	if u.data.Kind == leaf.KindCompact {
		u.data = leaf.Expand(u.data, s.cfg.gapSize)
	}
	suffix := u.data.Gap.SplitRight(suffixLen, s.cfg.gapSize)

	newLevel := randomLevel(s.cfg.source, s.cfg.p, s.cfg.maxLevel)
	if newLevel > u.level {
		newLevel = u.level
	}

	v := s.cfg.pool.get(newLevel)
	v.data = leaf.NewGap(suffix)
	vSize := v.contentSize()

	for i := 0; i < s.cfg.maxLevel; i++ {
		pred := snap.predecessors[i]
		if pred == nil || i >= len(pred.next) || pred.next[i] != u {
			continue
		}
		pred.span[i] -= vSize
		if i < newLevel {
			v.next[i] = u.next[i]
			v.span[i] = u.span[i]
			u.next[i] = v
			u.span[i] = vSize
		} else {
			u.span[i] += vSize
		}
	}

	s.cfg.logger.Debug("split_node",
		zap.Int("u_size", u.contentSize()),
		zap.Int("v_size", vSize),
		zap.Int("u_level", u.level),
		zap.Int("v_level", newLevel),
	)
}
