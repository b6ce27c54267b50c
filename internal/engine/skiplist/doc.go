// Package skiplist implements a bi-modal indexed skip list: a mutable,
// randomly indexable sequence of bytes backed by a probabilistic
// order-statistic skip list whose leaves are either a movable-gap buffer
// (for localized editing) or a tightly packed compact buffer (for
// sequential reads), see internal/engine/leaf.
//
//	seq := skiplist.New()
//	seq.Insert(0, []byte("hello world"))
//	seq.Erase(5, 1)
//	b, _ := seq.At(0)
//
// A Sequence is single-owner: it holds no lock and expects to be used by
// one goroutine at a time, or externally synchronized by the caller.
package skiplist
