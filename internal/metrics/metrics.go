package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StateFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_fetches_total",
			Help: "Total number of bulk pair fetches issued against the remote node",
		},
		[]string{"module"},
	)

	StatePairsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "state_pairs_fetched_total",
			Help: "Total number of key-value pairs fetched from the remote node",
		},
	)

	StateFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "state_fetch_duration_seconds",
			Help:    "Duration of bulk pair fetches",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"module"},
	)

	SnapshotCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_hits_total",
			Help: "Total number of snapshot cache hits",
		},
		[]string{"tier"},
	)

	SnapshotCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_misses_total",
			Help: "Total number of snapshot cache misses",
		},
		[]string{"tier"},
	)

	SnapshotCacheWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_write_errors_total",
			Help: "Total number of failed snapshot cache writes",
		},
		[]string{"tier"},
	)
)

// RecordFetch records one bulk pair fetch and its result size. An empty
// module filter is recorded under "all".
func RecordFetch(module string, pairs int) {
	if module == "" {
		module = "all"
	}
	StateFetches.WithLabelValues(module).Inc()
	StatePairsFetched.Add(float64(pairs))
}

// TimeFetch returns a timer function for measuring one bulk pair fetch.
func TimeFetch(module string) func() {
	if module == "" {
		module = "all"
	}
	timer := prometheus.NewTimer(StateFetchDuration.WithLabelValues(module))
	return func() {
		timer.ObserveDuration()
	}
}

// RecordCacheHit records a snapshot cache hit on the given tier.
func RecordCacheHit(tier string) {
	SnapshotCacheHits.WithLabelValues(tier).Inc()
}

// RecordCacheMiss records a snapshot cache miss on the given tier.
func RecordCacheMiss(tier string) {
	SnapshotCacheMisses.WithLabelValues(tier).Inc()
}

// RecordCacheWriteError records a failed snapshot cache write on the given tier.
func RecordCacheWriteError(tier string) {
	SnapshotCacheWriteErrors.WithLabelValues(tier).Inc()
}
