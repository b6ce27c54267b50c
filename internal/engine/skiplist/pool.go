package skiplist

import (
	"sync"

	"github.com/mazzuchi/bimodaltext/internal/engine/leaf"
	"golang.org/x/exp/slices"
)

// NodePool recycles node values and their next/span slices: fixed-layout
// headers are cheap to reuse and expensive to re-allocate one at a time
// under heavy editing.
type NodePool struct {
	nodes sync.Pool
}

// NewNodePool returns a pool ready for use. The zero value is also usable;
// this constructor exists for symmetry with the rest of the options API.
func NewNodePool() *NodePool {
	return &NodePool{}
}

// get returns a node sized for level, with next/span zeroed and data unset.
// The caller is responsible for assigning data before use.
func (p *NodePool) get(level int) *node {
	if v := p.nodes.Get(); v != nil {
		n := v.(*node)
		n.next = growOrClip(n.next, level)
		n.span = growOrClipInt(n.span, level)
		n.level = level
		return n
	}
	return &node{next: make([]*node, level), span: make([]int, level), level: level}
}

// put returns n to the pool after clearing its pointers so the garbage
// collector can reclaim whatever it referenced.
func (p *NodePool) put(n *node) {
	for i := range n.next {
		n.next[i] = nil
	}
	n.data = leaf.Variant{}
	p.nodes.Put(n)
}

// growOrClip resizes a []*node to exactly n entries, reusing the backing
// array when it already has enough capacity.
func growOrClip(s []*node, n int) []*node {
	if cap(s) >= n {
		s = s[:n]
		for i := range s {
			s[i] = nil
		}
		return s
	}
	return slices.Grow(s[:0], n)[:n]
}

// growOrClipInt resizes a []int to exactly n entries, reusing the backing
// array when it already has enough capacity.
func growOrClipInt(s []int, n int) []int {
	if cap(s) >= n {
		s = s[:n]
		for i := range s {
			s[i] = 0
		}
		return s
	}
	s = slices.Grow(s[:0], n)[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}
