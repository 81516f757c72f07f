package metrics

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/blindcube/detect"
)

var _ detect.Observer = (*Collector)(nil)

// Outcome labels for detect_queries_total.
const (
	OutcomeNone      = "none"
	OutcomeUnique    = "unique"
	OutcomeAmbiguous = "ambiguous"
)

// ErrRegister indicates a collector could not be registered.
var ErrRegister = errors.New("metrics: register failed")

// Collector records detector events. Safe for concurrent use.
type Collector struct {
	builds       *prometheus.CounterVec
	results      *prometheus.GaugeVec
	buildSeconds *prometheus.HistogramVec
	queries      *prometheus.CounterVec
	querySeconds *prometheus.HistogramVec
	matches      *prometheus.HistogramVec
}

// NewCollector creates the series under namespace and registers them on
// reg. A second NewCollector with the same namespace on one registry fails
// with ErrRegister.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "index_builds_total",
			Help:      "Detector indices built, by piece kind.",
		}, []string{"kind"}),
		results: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "index_results",
			Help:      "Indexed modified sequences of the last build, by kind and distance.",
		}, []string{"kind", "distance"}),
		buildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "index_build_seconds",
			Help:      "Detector index construction time.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"kind"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "queries_total",
			Help:      "Detect calls, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		querySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "query_seconds",
			Help:      "Detect latency.",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
		}, []string{"kind"}),
		matches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "query_matches",
			Help:      "Matches returned per Detect call.",
			Buckets:   []float64{0, 1, 2, 5, 10, 50},
		}, []string{"kind"}),
	}

	for _, col := range []prometheus.Collector{
		c.builds, c.results, c.buildSeconds, c.queries, c.querySeconds, c.matches,
	} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}

	return c, nil
}

// IndexBuilt records one detector construction.
func (c *Collector) IndexBuilt(kind string, perDistance []int, elapsed time.Duration) {
	c.builds.WithLabelValues(kind).Inc()
	c.buildSeconds.WithLabelValues(kind).Observe(elapsed.Seconds())
	for i, n := range perDistance {
		c.results.WithLabelValues(kind, strconv.Itoa(i+1)).Set(float64(n))
	}
}

// Detected records one query.
func (c *Collector) Detected(kind string, matches int, elapsed time.Duration) {
	c.queries.WithLabelValues(kind, outcome(matches)).Inc()
	c.querySeconds.WithLabelValues(kind).Observe(elapsed.Seconds())
	c.matches.WithLabelValues(kind).Observe(float64(matches))
}

func outcome(matches int) string {
	switch {
	case matches == 0:
		return OutcomeNone
	case matches == 1:
		return OutcomeUnique
	default:
		return OutcomeAmbiguous
	}
}

// WriteText gathers g and writes every family in the text exposition
// format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: WriteText: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: WriteText: %w", err)
		}
	}

	return nil
}
