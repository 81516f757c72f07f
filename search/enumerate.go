package search

import (
	"iter"

	"github.com/katalvlaran/blindcube/blind"
)

// Enumerate lazily yields every modified sequence at distance k from base,
// in the package order. k < 1 or k > len(base) yields nothing.
func Enumerate[T blind.Operation[T]](base blind.Sequence[T], k int) iter.Seq[blind.ModifiedSequence[T]] {
	return func(yield func(blind.ModifiedSequence[T]) bool) {
		if k < 1 || k > len(base) {
			return
		}
		alts := alternatives(base)
		for first := 0; first <= len(base)-k; first++ {
			if !walkFrom(base, alts, k, first, yield) {
				return
			}
		}
	}
}

// Count returns the size of the distance-k neighbourhood of base without
// enumerating it: the k-th elementary symmetric sum of the per-step
// alternative counts.
func Count[T blind.Operation[T]](base blind.Sequence[T], k int) int {
	if k < 1 || k > len(base) {
		return 0
	}
	e := make([]int, k+1)
	e[0] = 1
	for _, op := range base {
		a := len(op.Alternatives())
		for j := k; j >= 1; j-- {
			e[j] += e[j-1] * a
		}
	}

	return e[k]
}

// alternatives precomputes the alternatives of every step of base.
func alternatives[T blind.Operation[T]](base blind.Sequence[T]) [][]T {
	out := make([][]T, len(base))
	for i, op := range base {
		out[i] = op.Alternatives()
	}

	return out
}

// walkFrom yields every distance-k sequence whose lowest changed step is
// first. It returns false once yield asks to stop.
func walkFrom[T blind.Operation[T]](
	base blind.Sequence[T],
	alts [][]T,
	k, first int,
	yield func(blind.ModifiedSequence[T]) bool,
) bool {
	// 1) pos holds the k changed step indices, ascending; the lowest is
	// pinned to first.
	pos := make([]int, k)
	pos[0] = first
	// scratch modifiers, overwritten per tuple
	mods := make([]blind.Modifier[T], k)

	// 2) For every completion of pos, cross the alternatives of its steps.
	return combos(len(base), pos, 1, func() bool {
		return product(base, alts, pos, mods, 0, yield)
	})
}

// combos fills pos[depth:] with every strictly increasing continuation of
// pos[:depth] below n and calls fn for each complete tuple.
func combos(n int, pos []int, depth int, fn func() bool) bool {
	// 1) Tuple complete: hand it over.
	if depth == len(pos) {
		return fn()
	}
	// 2) Leave room for the len(pos)-depth-1 slots still to fill.
	for p := pos[depth-1] + 1; p <= n-(len(pos)-depth); p++ {
		pos[depth] = p
		if !combos(n, pos, depth+1, fn) {
			return false // stop requested downstream
		}
	}

	return true
}

// product crosses the alternatives of the steps in pos, slowest first.
// Modify copies mods, so the scratch slice is reused safely.
func product[T blind.Operation[T]](
	base blind.Sequence[T],
	alts [][]T,
	pos []int,
	mods []blind.Modifier[T],
	depth int,
	yield func(blind.ModifiedSequence[T]) bool,
) bool {
	// 1) Every changed step has an alternative: build the sequence.
	if depth == len(pos) {
		return yield(blind.Modify(base, mods...))
	}
	// 2) Try each alternative of this step, then recurse to the next.
	step := pos[depth]
	for _, a := range alts[step] {
		mods[depth] = blind.Modifier[T]{Index: step, Op: a}
		if !product(base, alts, pos, mods, depth+1, yield) {
			return false // stop requested by yield
		}
	}

	return true
}
