package blind

import (
	"slices"
	"strings"

	"github.com/katalvlaran/blindcube/cube"
)

// Modifier replaces the step at Index with Op.
type Modifier[T Operation[T]] struct {
	Index int
	Op    T
}

// ModifiedSequence is an original sequence with a sparse set of per-step
// replacements overlaid. The original is never written to; every
// ModifiedSequence built from it shares it read-only.
//
// Two ModifiedSequences are distinct search results even when they
// materialise to the same concrete sequence.
type ModifiedSequence[T Operation[T]] struct {
	original  Sequence[T]
	modifiers []Modifier[T]
}

// Modify overlays mods onto original. Modifiers are copied and sorted by
// index; indices are expected to be distinct and inside original.
func Modify[T Operation[T]](original Sequence[T], mods ...Modifier[T]) ModifiedSequence[T] {
	own := slices.Clone(mods)
	slices.SortStableFunc(own, func(a, b Modifier[T]) int { return a.Index - b.Index })

	return ModifiedSequence[T]{original: original, modifiers: own}
}

// Original returns the base sequence.
func (m ModifiedSequence[T]) Original() Sequence[T] { return m.original }

// Modifiers returns a copy of the modifiers, ordered by index.
func (m ModifiedSequence[T]) Modifiers() []Modifier[T] { return slices.Clone(m.modifiers) }

// Distance is the number of modifiers.
func (m ModifiedSequence[T]) Distance() int { return len(m.modifiers) }

// Len is the length of the materialised sequence.
func (m ModifiedSequence[T]) Len() int { return len(m.original) }

// At returns the materialised op at step i and whether it was substituted.
func (m ModifiedSequence[T]) At(i int) (T, bool) {
	for j := len(m.modifiers) - 1; j >= 0; j-- {
		if m.modifiers[j].Index == i {
			return m.modifiers[j].Op, true
		}
	}

	return m.original[i], false
}

// Sequence materialises the overlay into a fresh slice.
func (m ModifiedSequence[T]) Sequence() Sequence[T] {
	out := make(Sequence[T], len(m.original))
	m.each(func(i int, op T, _ bool) { out[i] = op })

	return out
}

// Apply performs the materialised sequence on s without allocating it.
func (m ModifiedSequence[T]) Apply(s cube.State) cube.State {
	m.each(func(_ int, op T, _ bool) { s = op.Apply(s) })

	return s
}

// each walks the materialised steps in order: a linear merge of the
// original with the sorted modifiers.
func (m ModifiedSequence[T]) each(fn func(i int, op T, modified bool)) {
	next := 0
	for i, op := range m.original {
		modified := false
		for next < len(m.modifiers) && m.modifiers[next].Index == i {
			op = m.modifiers[next].Op
			modified = true
			next++
		}
		fn(i, op, modified)
	}
}

// String renders the materialised sequence, wrapping substituted steps in
// asterisks: "swap(UFR,DFR,2) *swap(UFR,UBL,0)*".
func (m ModifiedSequence[T]) String() string {
	parts := make([]string, 0, len(m.original))
	m.each(func(_ int, op T, modified bool) {
		if modified {
			parts = append(parts, "*"+op.String()+"*")
			return
		}
		parts = append(parts, op.String())
	})

	return strings.Join(parts, " ")
}
