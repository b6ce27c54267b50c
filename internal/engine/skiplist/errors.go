package skiplist

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrOutOfRange is returned when an operation's position or range falls
// outside the sequence's current bounds. This is a routine precondition
// failure, not a bug: callers are expected to check Len before issuing an
// edit that might be out of range, and to handle this error when they
// don't.
var ErrOutOfRange = errors.New("skiplist: position out of range")

// ErrStructureCorruption indicates the skip list's internal invariants have
// been violated — a forward pointer or span count no longer describes the
// actual chain of nodes. A correct implementation never returns this; it
// exists so a broken build fails loudly instead of returning silently wrong
// data.
var ErrStructureCorruption = errors.New("skiplist: internal structure corruption")

// ErrAllocationFailure represents a failed node or buffer allocation. Go's
// allocator does not report this to callers (the process dies on OOM), so
// this sentinel is declared for error-taxonomy completeness but is not
// reachable in practice.
var ErrAllocationFailure = errors.New("skiplist: allocation failure")

// wrapCorruption attaches a stack trace to ErrStructureCorruption so the
// error returned to a test harness or caller can be diagnosed.
func wrapCorruption(msg string) error {
	return pkgerrors.WithStack(pkgerrors.Wrap(ErrStructureCorruption, msg))
}
