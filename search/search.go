package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

// Distance1 returns every single-step substitution of base applied to
// initial. Its length is Count(base, 1).
func Distance1[T blind.Operation[T]](base blind.Sequence[T], initial cube.State) []Result[T] {
	return distance(base, initial, 1)
}

// Distance2 returns every two-step substitution of base applied to
// initial. A base shorter than two steps yields nothing.
func Distance2[T blind.Operation[T]](base blind.Sequence[T], initial cube.State) []Result[T] {
	return distance(base, initial, 2)
}

// Distance returns every k-step substitution of base applied to initial.
func Distance[T blind.Operation[T]](base blind.Sequence[T], initial cube.State, k int) ([]Result[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("search: Distance(k=%d): %w", k, ErrBadDistance)
	}

	return distance(base, initial, k), nil
}

// distance materialises Enumerate(base, k); k must be at least 1.
func distance[T blind.Operation[T]](base blind.Sequence[T], initial cube.State, k int) []Result[T] {
	out := make([]Result[T], 0, Count(base, k))
	for ms := range Enumerate(base, k) {
		out = append(out, Result[T]{Sequence: ms, State: ms.Apply(initial)})
	}

	return out
}

// Explore builds the neighbourhood of base at distances 1..MaxDistance.
//
// With Workers > 1 each level is split by its lowest changed step and the
// parts run on an errgroup; every part fills its own slot, so the result
// order matches the sequential run. The only error is cancellation of the
// configured context.
func Explore[T blind.Operation[T]](base blind.Sequence[T], initial cube.State, opts ...Option) (Index[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	alts := alternatives(base)
	idx := Index[T]{Levels: make([][]Result[T], o.MaxDistance)}
	for d := 1; d <= o.MaxDistance; d++ {
		level, err := exploreLevel(o, base, initial, alts, d)
		if err != nil {
			return Index[T]{}, fmt.Errorf("search: Explore: distance %d: %w", d, err)
		}
		idx.Levels[d-1] = level
	}

	return idx, nil
}

// exploreLevel enumerates one distance, partitioned by lowest changed step.
func exploreLevel[T blind.Operation[T]](
	o Options,
	base blind.Sequence[T],
	initial cube.State,
	alts [][]T,
	d int,
) ([]Result[T], error) {
	// 1) No d-subset of steps exists past the base length.
	if d > len(base) {
		return nil, nil
	}
	// one part per possible lowest changed step; slots[first] is owned by
	// exactly one worker
	parts := len(base) - d + 1
	slots := make([][]Result[T], parts)

	// 2) collect fills one slot; a cancelled context skips the work.
	collect := func(ctx context.Context, first int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var out []Result[T]
		walkFrom(base, alts, d, first, func(ms blind.ModifiedSequence[T]) bool {
			out = append(out, Result[T]{Sequence: ms, State: ms.Apply(initial)})
			return true
		})
		slots[first] = out

		return nil
	}

	// 3) Run the parts inline or on a bounded errgroup.
	if o.Workers <= 1 {
		for first := 0; first < parts; first++ {
			if err := collect(o.Ctx, first); err != nil {
				return nil, err
			}
		}
	} else {
		g, ctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Workers)
		for first := 0; first < parts; first++ {
			g.Go(func() error { return collect(ctx, first) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// 4) Concatenate in slot order so the output is deterministic.
	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]Result[T], 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}

	return out, nil
}
