package detect

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
	"github.com/katalvlaran/blindcube/search"
)

// Inspector produces the correct sequence for an initial state.
type Inspector[T blind.Operation[T]] func(s cube.State) blind.Sequence[T]

// Detector holds the correct sequence for one initial state and the
// indexed neighbourhood of that sequence.
type Detector[T blind.Operation[T]] struct {
	kind    string
	initial cube.State
	correct blind.Sequence[T]
	index   search.Index[T]
	all     []search.Result[T]
	buckets map[uint64][]int
	log     logrus.FieldLogger
	obs     Observer
}

// New builds a detector whose correct sequence comes from inspect. kind
// labels log lines and observer events.
func New[T blind.Operation[T]](kind string, initial cube.State, inspect Inspector[T], opts ...Option) *Detector[T] {
	o := resolve(opts)

	return build(kind, initial, inspect(initial), o)
}

// NewCorner builds a corner detector.
func NewCorner(initial cube.State, opts ...Option) *Detector[blind.CornerOp] {
	return New[blind.CornerOp]("corners", initial, blind.InspectCorners, opts...)
}

// NewEdge builds an edge detector. WithSwapInspection switches the edge
// inspection to the UF/UR relabel.
func NewEdge(initial cube.State, opts ...Option) *Detector[blind.EdgeOp] {
	o := resolve(opts)

	return build("edges", initial, blind.InspectEdges(initial, o.Inspect...), o)
}

// NewMixed builds a detector over the corner sequence followed by the edge
// sequence, so substitutions can land in either half.
func NewMixed(initial cube.State, opts ...Option) *Detector[blind.MixedOp] {
	o := resolve(opts)
	seq := blind.Mix(blind.InspectCorners(initial), blind.InspectEdges(initial, o.Inspect...))

	return build("mixed", initial, seq, o)
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// build explores the neighbourhood of correct and buckets every result by
// state hash, keeping insertion order inside each bucket.
func build[T blind.Operation[T]](kind string, initial cube.State, correct blind.Sequence[T], o Options) *Detector[T] {
	start := time.Now()

	// Explore only fails on context cancellation and no context is set.
	idx, _ := search.Explore(correct, initial,
		search.WithMaxDistance(o.MaxDistance),
		search.WithWorkers(o.Workers),
	)

	all := idx.All()
	buckets := make(map[uint64][]int, len(all))
	for i, r := range all {
		h := r.State.Hash()
		buckets[h] = append(buckets[h], i)
	}

	d := &Detector[T]{
		kind:    kind,
		initial: initial,
		correct: correct,
		index:   idx,
		all:     all,
		buckets: buckets,
		log:     o.Logger.WithField("kind", kind),
		obs:     o.Observer,
	}

	elapsed := time.Since(start)
	per := make([]int, len(idx.Levels))
	for i, l := range idx.Levels {
		per[i] = len(l)
	}
	d.log.WithFields(logrus.Fields{
		"steps":    len(correct),
		"variants": len(all),
		"states":   len(buckets),
		"elapsed":  elapsed,
	}).Debug("detect: index built")
	if d.obs != nil {
		d.obs.IndexBuilt(kind, per, elapsed)
	}

	return d
}

// Detect returns every indexed modified sequence whose recorded state
// equals observed, in index order (distance 1 before distance 2). A nil
// result means no bounded substitution explains observed.
func (d *Detector[T]) Detect(observed cube.State) []blind.ModifiedSequence[T] {
	start := time.Now()

	var out []blind.ModifiedSequence[T]
	for _, i := range d.buckets[observed.Hash()] {
		// hash buckets may collide; equality decides
		if r := d.all[i]; r.State == observed {
			out = append(out, r.Sequence)
		}
	}

	elapsed := time.Since(start)
	d.log.WithFields(logrus.Fields{
		"matches": len(out),
		"elapsed": elapsed,
	}).Debug("detect: query")
	if d.obs != nil {
		d.obs.Detected(d.kind, len(out), elapsed)
	}

	return out
}

// Kind is the label given at construction ("corners", "edges", "mixed").
func (d *Detector[T]) Kind() string { return d.kind }

// Initial is the state the detector was built for.
func (d *Detector[T]) Initial() cube.State { return d.initial }

// Correct is the inspected sequence.
func (d *Detector[T]) Correct() blind.Sequence[T] { return d.correct }

// Distance1 returns the indexed distance-1 results.
func (d *Detector[T]) Distance1() []search.Result[T] { return d.index.Level(1) }

// Distance2 returns the indexed distance-2 results (nil when disabled).
func (d *Detector[T]) Distance2() []search.Result[T] { return d.index.Level(2) }

// Results returns every indexed result, distance 1 first.
func (d *Detector[T]) Results() []search.Result[T] { return d.all }

// Len is the number of indexed results.
func (d *Detector[T]) Len() int { return len(d.all) }
