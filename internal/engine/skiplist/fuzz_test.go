package skiplist

import (
	"bytes"
	"testing"
)

// FuzzInsertErase checks that a Sequence driven by arbitrary insert/erase
// operations always matches a plain []byte reference model.
func FuzzInsertErase(f *testing.F) {
	f.Add(0, "hello", 2, 3)
	f.Add(0, "", 0, 0)
	f.Add(5, "world", 100, 2)

	f.Fuzz(func(t *testing.T, insertPos int, insertStr string, erasePos, eraseLen int) {
		s := New(WithNodeMaxSize(32), WithGapSize(4))
		var ref []byte

		clampPos := func(pos, max int) int {
			if pos < 0 {
				pos = 0
			}
			if pos > max {
				pos = max
			}
			return pos
		}

		pos := clampPos(insertPos, len(ref))
		if err := s.Insert(pos, []byte(insertStr)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		ref = append(ref[:pos], append([]byte(insertStr), ref[pos:]...)...)

		// Erase clamps an overrunning length and no-ops past the end on its
		// own (see Erase's doc comment); only a negative position is an
		// error, so pos is clamped to 0 here but otherwise passed through
		// unclamped to exercise that behavior directly.
		ePos := erasePos
		if ePos < 0 {
			ePos = 0
		}
		if err := s.Erase(ePos, eraseLen); err != nil {
			t.Fatalf("Erase: %v", err)
		}
		if eraseLen > 0 && ePos < len(ref) {
			eLen := eraseLen
			if ePos+eLen > len(ref) {
				eLen = len(ref) - ePos
			}
			ref = append(ref[:ePos], ref[ePos+eLen:]...)
		}

		if s.Len() != len(ref) {
			t.Fatalf("Len() = %d, want %d", s.Len(), len(ref))
		}
		if got := collect(t, s); !bytes.Equal(got, ref) {
			t.Fatalf("content mismatch: got %q, want %q", got, ref)
		}
		for i, want := range ref {
			got, err := s.At(i)
			if err != nil {
				t.Fatalf("At(%d): %v", i, err)
			}
			if got != want {
				t.Fatalf("At(%d) = %q, want %q", i, got, want)
			}
		}
	})
}
