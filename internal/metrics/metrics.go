package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EnsembleAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteogram_ensemble_api_calls_total",
			Help: "Total upstream ensemble API calls",
		},
		[]string{"model", "granularity", "status"},
	)

	EnsembleAPILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meteogram_ensemble_api_latency_seconds",
			Help:    "Upstream ensemble API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	FetchesSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meteogram_fetches_superseded_total",
			Help: "In-flight fetches discarded because a newer request replaced them",
		},
	)

	SeriesBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteogram_series_built_total",
			Help: "Derived series built, by pipeline kind",
		},
		[]string{"kind"},
	)
)
