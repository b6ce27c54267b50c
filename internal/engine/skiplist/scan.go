package skiplist

// Scan calls f once for every byte in the sequence, in order. Scan does not
// allocate: each node's live content is walked directly via its leaf's
// ForEach, so a full scan touches O(n) bytes and no intermediate buffer.
func (s *Sequence) Scan(f func(byte)) {
	for n := s.head.next[0]; n != nil; n = n.next[0] {
		n.data.ForEach(func(b byte) bool {
			f(b)
			return true
		})
	}
}
