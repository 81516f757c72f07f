// Package metrics exports detector activity to Prometheus.
//
// Collector implements detect.Observer. Register it on a caller-owned
// prometheus.Registerer and pass it to a detector with
// detect.WithObserver:
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.NewCollector(reg, "blindcube")
//	d := detect.NewCorner(s, detect.WithObserver(c))
//
// Series (namespace prefix omitted):
//
//	detect_index_builds_total{kind}
//	detect_index_results{kind,distance}      results of the last build
//	detect_index_build_seconds{kind}
//	detect_queries_total{kind,outcome}       outcome: none | unique | ambiguous
//	detect_query_seconds{kind}
//	detect_query_matches{kind}
//
// WriteText renders any Gatherer in the Prometheus text format.
package metrics
