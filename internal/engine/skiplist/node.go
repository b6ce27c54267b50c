package skiplist

import "github.com/mazzuchi/bimodaltext/internal/engine/leaf"

// node is one entry in the skip list: a leaf of content plus, for each
// level it participates in, a forward pointer and the number of bytes
// spanned by that forward pointer.
type node struct {
	data  leaf.Variant
	next  []*node
	span  []int
	level int
}

// contentSize returns the number of live bytes held in the node's leaf.
func (n *node) contentSize() int {
	return n.data.Size()
}
