package metrics

import (
	"database/sql"
	"errors"
	"time"

	"crud-starter/internal/domain/entity"
)

// RecordEntityOperation records one CRUD operation against a table. The
// outcome label distinguishes domain results from real failures so alerting
// does not page on 404s.
func RecordEntityOperation(table, operation string, err error, duration time.Duration) {
	outcome := "success"
	switch {
	case errors.Is(err, entity.ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, entity.ErrConflict):
		outcome = "conflict"
	case err != nil:
		outcome = "error"
	}
	EntityOperationsTotal.WithLabelValues(table, operation, outcome).Inc()
	DBQueryDuration.WithLabelValues(table, operation).Observe(duration.Seconds())
}

// UpdateDBPoolStats publishes connection pool gauges. Call it periodically
// from a background goroutine.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsOpen.Set(float64(stats.OpenConnections))
	DBConnectionsIdle.Set(float64(stats.Idle))
	DBConnectionsInUse.Set(float64(stats.InUse))
}
