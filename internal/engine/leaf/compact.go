package leaf

// CompactLeaf is a tightly packed, read-only byte buffer. It carries no
// slack and supports no in-place mutation; edits force an Expand back to a
// GapLeaf first.
type CompactLeaf struct {
	buf []byte
}

// NewCompactLeaf wraps data as a CompactLeaf. The caller gives up ownership
// of data.
func NewCompactLeaf(data []byte) *CompactLeaf {
	return &CompactLeaf{buf: data}
}

// Size returns the number of bytes held.
func (c *CompactLeaf) Size() int {
	return len(c.buf)
}

// At returns the byte at position i.
func (c *CompactLeaf) At(i int) byte {
	return c.buf[i]
}

// AppendTo appends the leaf's bytes to dst.
func (c *CompactLeaf) AppendTo(dst []byte) []byte {
	return append(dst, c.buf...)
}

// ForEach calls f with each byte in order, stopping early if f returns
// false.
func (c *CompactLeaf) ForEach(f func(byte) bool) bool {
	for _, b := range c.buf {
		if !f(b) {
			return false
		}
	}
	return true
}
