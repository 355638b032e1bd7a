// Package metrics exposes Prometheus collectors for the normalizer's
// memoization layer.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	memoHitsTotal            prometheus.Counter
	memoMissesTotal          prometheus.Counter
	memoResetsTotal          prometheus.Counter
	normalizeDurationSeconds prometheus.Histogram

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		memoHitsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "normalizer_memo_hits_total",
				Help: "Total number of URL normalizations served from the memo cache.",
			},
		)

		memoMissesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "normalizer_memo_misses_total",
				Help: "Total number of URL normalizations computed on a memo cache miss.",
			},
		)

		memoResetsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "normalizer_memo_resets_total",
				Help: "Total number of times the memo cache was reset after filling up.",
			},
		)

		normalizeDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "normalizer_url_normalize_duration_seconds",
				Help:    "Histogram of URL normalization latencies on memo cache misses.",
				Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
			},
		)
	})
}

// RecordMemoHit counts a memo cache hit.
func RecordMemoHit() {
	if memoHitsTotal != nil {
		memoHitsTotal.Inc()
	}
}

// RecordMemoMiss counts a memo cache miss.
func RecordMemoMiss() {
	if memoMissesTotal != nil {
		memoMissesTotal.Inc()
	}
}

// RecordMemoReset counts a cache reset caused by the entry bound.
func RecordMemoReset() {
	if memoResetsTotal != nil {
		memoResetsTotal.Inc()
	}
}

// ObserveNormalizeDuration records how long a cache-miss normalization took.
func ObserveNormalizeDuration(d time.Duration) {
	if normalizeDurationSeconds != nil {
		normalizeDurationSeconds.Observe(d.Seconds())
	}
}
