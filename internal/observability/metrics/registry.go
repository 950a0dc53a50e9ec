// Package metrics provides Prometheus metrics for the persistence layer.
// HTTP request metrics live with the HTTP handlers; this package covers what
// happens below them: query latencies, entity operation outcomes and
// connection pool pressure.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityOperationsTotal counts CRUD operations by table, operation and
	// outcome ("success", "not_found", "conflict", "error").
	EntityOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_operations_total",
			Help: "Total number of entity CRUD operations",
		},
		[]string{"table", "operation", "outcome"},
	)

	// DBQueryDuration measures query latency per table and operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"table", "operation"},
	)

	// DBConnectionsOpen tracks open connections in the pool.
	DBConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		},
	)

	// DBConnectionsIdle tracks idle connections in the pool.
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// DBConnectionsInUse tracks connections currently checked out.
	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		},
	)
)
