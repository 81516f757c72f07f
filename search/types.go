package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

// ErrBadDistance indicates a neighbourhood distance below 1.
var ErrBadDistance = errors.New("search: distance must be >= 1")

// Result pairs a modified sequence with the state it reaches.
type Result[T blind.Operation[T]] struct {
	Sequence blind.ModifiedSequence[T]
	State    cube.State
}

// Index is the output of Explore: Levels[d-1] holds the distance-d results.
type Index[T blind.Operation[T]] struct {
	Levels [][]Result[T]
}

// Level returns the distance-d results, or nil when d was not explored.
func (x Index[T]) Level(d int) []Result[T] {
	if d < 1 || d > len(x.Levels) {
		return nil
	}

	return x.Levels[d-1]
}

// Len is the total number of results over all levels.
func (x Index[T]) Len() int {
	n := 0
	for _, l := range x.Levels {
		n += len(l)
	}

	return n
}

// All returns every result, level by level.
func (x Index[T]) All() []Result[T] {
	out := make([]Result[T], 0, x.Len())
	for _, l := range x.Levels {
		out = append(out, l...)
	}

	return out
}

// Option configures Explore.
type Option func(*Options)

// Options holds Explore settings.
type Options struct {
	// Ctx cancels parallel exploration; defaults to context.Background().
	Ctx context.Context

	// MaxDistance is the largest distance explored; default 2.
	MaxDistance int

	// Workers bounds the goroutines used per level; 1 (default) runs inline.
	Workers int
}

// DefaultOptions returns Background context, MaxDistance 2, one worker.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: 2,
		Workers:     1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets the largest distance explored. Panics if d < 1.
func WithMaxDistance(d int) Option {
	if d < 1 {
		panic("search: WithMaxDistance(d < 1)")
	}

	return func(o *Options) {
		o.MaxDistance = d
	}
}

// WithWorkers bounds the goroutines per level. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("search: WithWorkers(n < 1)")
	}

	return func(o *Options) {
		o.Workers = n
	}
}
