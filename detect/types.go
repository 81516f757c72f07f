package detect

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/blindcube/blind"
)

// Observer receives construction and query events. Implementations must be
// safe for concurrent use when Detect is called concurrently.
type Observer interface {
	// IndexBuilt is called once per detector with the number of results
	// at each distance (index 0 is distance 1).
	IndexBuilt(kind string, perDistance []int, elapsed time.Duration)

	// Detected is called after every Detect.
	Detected(kind string, matches int, elapsed time.Duration)
}

// Option configures a Detector.
type Option func(*Options)

// Options holds Detector settings.
type Options struct {
	// Logger receives debug events; defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Observer, if non-nil, receives construction and query events.
	Observer Observer

	// MaxDistance bounds the neighbourhood; default 2.
	MaxDistance int

	// Workers is passed to search.WithWorkers; default 1.
	Workers int

	// Inspect holds options for edge inspection (NewEdge only).
	Inspect []blind.Option
}

// DefaultOptions returns a silent logger, no observer, distance 2, one worker.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Logger:      l,
		MaxDistance: 2,
		Workers:     1,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs an event observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithDistance2 toggles the distance-2 neighbourhood (on by default).
func WithDistance2(on bool) Option {
	return func(o *Options) {
		if on {
			o.MaxDistance = 2
		} else {
			o.MaxDistance = 1
		}
	}
}

// WithWorkers bounds neighbourhood construction goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("detect: WithWorkers(n < 1)")
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithSwapInspection makes NewEdge inspect with the UF/UR relabel.
func WithSwapInspection() Option {
	return func(o *Options) {
		o.Inspect = append(o.Inspect, blind.WithSwapInspection())
	}
}
