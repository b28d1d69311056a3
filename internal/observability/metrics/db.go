package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DBPoolAcquiredConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_acquired_connections",
			Help: "Postgres connections currently held by note or user queries",
		},
	)

	DBPoolIdleConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Postgres connections idle in the pool",
		},
	)

	DBPoolConstructingConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_constructing_connections",
			Help: "Postgres connections being established",
		},
	)

	DBPoolMaxConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_max_connections",
			Help: "Configured upper bound of the Postgres pool",
		},
	)

	DBPoolTotalConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_total_connections",
			Help: "All Postgres connections owned by the pool",
		},
	)

	// Store calls run under the request timeout (5s by default), so the
	// buckets stop there and are dense at the low end for primary-key lookups.
	DBQueryDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Latency of note and user store queries in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Failed note and user store queries, excluding not-found lookups",
		},
		[]string{"operation", "table", "error_type"},
	)
)
