package leaf

// Kind identifies which concrete representation a Variant currently holds.
type Kind uint8

const (
	// KindGap means the variant holds a *GapLeaf.
	KindGap Kind = iota
	// KindCompact means the variant holds a *CompactLeaf.
	KindCompact
)

// Variant is a tagged union of GapLeaf and CompactLeaf — dispatch on Kind,
// not a Go interface, so a node never pays an interface-dispatch indirection
// on its hot path (Size/At/ForEach).
type Variant struct {
	Kind    Kind
	Gap     *GapLeaf
	Compact *CompactLeaf
}

// NewGap wraps g as a gap-mode Variant.
func NewGap(g *GapLeaf) Variant {
	return Variant{Kind: KindGap, Gap: g}
}

// NewCompact wraps c as a compact-mode Variant.
func NewCompact(c *CompactLeaf) Variant {
	return Variant{Kind: KindCompact, Compact: c}
}

// Size returns the number of live bytes in whichever leaf is held.
func (v Variant) Size() int {
	if v.Kind == KindCompact {
		return v.Compact.Size()
	}
	return v.Gap.Size()
}

// At returns the byte at logical position i.
func (v Variant) At(i int) byte {
	if v.Kind == KindCompact {
		return v.Compact.At(i)
	}
	return v.Gap.At(i)
}

// AppendTo appends the held leaf's bytes, in order, to dst.
func (v Variant) AppendTo(dst []byte) []byte {
	if v.Kind == KindCompact {
		return v.Compact.AppendTo(dst)
	}
	return v.Gap.AppendTo(dst)
}

// ForEach calls f with each byte in order, stopping early if f returns
// false.
func (v Variant) ForEach(f func(byte) bool) bool {
	if v.Kind == KindCompact {
		return v.Compact.ForEach(f)
	}
	return v.Gap.ForEach(f)
}

// Expand converts a compact-mode Variant to gap mode, growing in gapSize of
// slack beyond the existing content. It is a no-op if already in gap mode.
func Expand(v Variant, gapSize int) Variant {
	if v.Kind == KindGap {
		return v
	}
	c := v.Compact
	g := NewGapLeaf(c.Size()+gapSize, gapSize)
	copy(g.buf, c.buf)
	g.gapStart = c.Size()
	g.gapEnd = len(g.buf)
	return NewGap(g)
}

// Compact converts a gap-mode Variant to compact mode, discarding slack. It
// is a no-op if already compact.
func Compact(v Variant) Variant {
	if v.Kind == KindCompact {
		return v
	}
	g := v.Gap
	buf := make([]byte, 0, g.Size())
	buf = append(buf, g.buf[:g.gapStart]...)
	buf = append(buf, g.buf[g.gapEnd:]...)
	return NewCompact(NewCompactLeaf(buf))
}
