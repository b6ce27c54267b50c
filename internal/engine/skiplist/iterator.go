package skiplist

// Iterator is a finite, forward-only cursor over a Sequence's bytes. It is
// not restartable: once exhausted, a new one must be obtained from
// NewIterator. An Iterator observes the sequence at the moment it was
// created; mutating the sequence while iterating invalidates it.
type Iterator struct {
	cur    *node
	offset int

	// cached length of cur's content, refreshed whenever cur changes, so
	// Next doesn't recompute Size() on every call.
	cachedLen int
}

// NewIterator returns an iterator positioned at the start of s.
func (s *Sequence) NewIterator() *Iterator {
	it := &Iterator{cur: s.head.next[0]}
	it.refreshCache()
	return it
}

func (it *Iterator) refreshCache() {
	if it.cur == nil {
		it.cachedLen = 0
		return
	}
	it.cachedLen = it.cur.contentSize()
}

// Next returns the next byte and true, or (0, false) once the sequence is
// exhausted.
func (it *Iterator) Next() (byte, bool) {
	for it.cur != nil {
		if it.offset < it.cachedLen {
			b := it.cur.data.At(it.offset)
			it.offset++
			return b, true
		}
		it.cur = it.cur.next[0]
		it.offset = 0
		it.refreshCache()
	}
	return 0, false
}
