package skiplist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the structural invariants a correctly maintained
// skip list must satisfy after every public operation: level-0 content sums
// to the total length, every used level's spans sum to the total length
// (counting the trailing nil-link span, which carries the distance from the
// last node at that level to the end of the sequence), every span describes
// exactly the bytes its link jumps, and every node's content stays within
// (0, nodeMaxSize].
func checkInvariants(t *testing.T, s *Sequence) {
	t.Helper()

	// Level-0 end offsets, used to verify each link's span against the
	// bytes it actually jumps.
	end := map[*node]int{s.head: 0}
	sum := 0
	for n := s.head.next[0]; n != nil; n = n.next[0] {
		require.GreaterOrEqual(t, n.level, 1, "node level must be >= 1")
		require.LessOrEqual(t, n.level, s.cfg.maxLevel, "node level must be <= maxLevel")
		require.Greater(t, n.contentSize(), 0, "no empty node may remain linked")
		require.LessOrEqual(t, n.contentSize(), s.cfg.nodeMaxSize,
			"node content must not exceed nodeMaxSize")
		sum += n.contentSize()
		end[n] = sum
	}
	require.Equal(t, s.total, sum, "level-0 content sum must equal total length")

	for i := 0; i < s.cfg.maxLevel; i++ {
		if s.head.next[i] == nil {
			continue
		}
		levelSum := 0
		for x := s.head; x != nil; x = x.next[i] {
			levelSum += x.span[i]
			if y := x.next[i]; y != nil {
				require.Equalf(t, end[y]-end[x], x.span[i],
					"level %d span from node ending at %d", i, end[x])
			} else {
				require.Equalf(t, s.total-end[x], x.span[i],
					"level %d trailing span from node ending at %d", i, end[x])
			}
		}
		require.Equalf(t, s.total, levelSum, "level %d span sum mismatch", i)
	}
}

func TestInvariantsHoldUnderRandomOps(t *testing.T) {
	s := New(WithNodeMaxSize(64), WithGapSize(8))
	ref := []byte{}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0, 1:
			pos := rng.Intn(len(ref) + 1)
			n := rng.Intn(15) + 1
			chunk := make([]byte, n)
			for j := range chunk {
				chunk[j] = byte('a' + rng.Intn(26))
			}
			require.NoError(t, s.Insert(pos, chunk))
			ref = append(ref[:pos], append(append([]byte{}, chunk...), ref[pos:]...)...)
		case 2:
			if len(ref) == 0 {
				continue
			}
			pos := rng.Intn(len(ref))
			n := rng.Intn(len(ref)-pos) + 1
			require.NoError(t, s.Erase(pos, n))
			ref = append(ref[:pos], ref[pos+n:]...)
		case 3:
			s.Optimize()
		}
		checkInvariants(t, s)
	}

	require.Equal(t, len(ref), s.Len())
	require.Equal(t, ref, collect(t, s))
}

func TestInvariantsHoldAfterLargeInsert(t *testing.T) {
	s := New(WithNodeMaxSize(64), WithGapSize(8))

	big := make([]byte, 10000)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	require.NoError(t, s.Insert(0, big))
	checkInvariants(t, s)

	require.NoError(t, s.Insert(5000, big))
	checkInvariants(t, s)

	s.Optimize()
	checkInvariants(t, s)
}
