package blind

import (
	"strings"

	"github.com/katalvlaran/blindcube/cube"
)

// Sequence is an ordered list of same-kind operations.
type Sequence[T Operation[T]] []T

// Apply performs every op of q, in order, on s.
func (q Sequence[T]) Apply(s cube.State) cube.State {
	for _, op := range q {
		s = op.Apply(s)
	}

	return s
}

// Count returns how many ops satisfy pred.
func (q Sequence[T]) Count(pred func(T) bool) int {
	n := 0
	for _, op := range q {
		if pred(op) {
			n++
		}
	}

	return n
}

// Keys returns the table key of every op, in order.
func (q Sequence[T]) Keys() []string {
	out := make([]string, len(q))
	for i, op := range q {
		out[i] = op.Key()
	}

	return out
}

// String joins the ops with spaces; an empty sequence renders as "".
func (q Sequence[T]) String() string {
	parts := make([]string, len(q))
	for i, op := range q {
		parts[i] = op.String()
	}

	return strings.Join(parts, " ")
}

// IsSwap reports whether a corner op is a Swap. Handy with Count.
func IsSwap(op CornerOp) bool { return op.Type == Swap }
