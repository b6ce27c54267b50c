// Package leaf implements the two leaf representations used by the
// bi-modal indexed skip list: a movable-gap buffer optimized for localized
// edits (GapLeaf) and a tightly packed, read-only buffer optimized for
// sequential reads (CompactLeaf).
//
// Neither type tracks Unicode structure; both operate on untyped bytes.
// Segmentation into runes, graphemes, or lines is the caller's concern.
//
// Variant ties the two representations together as a tagged union and
// provides the Expand/Compact conversions between them.
package leaf
