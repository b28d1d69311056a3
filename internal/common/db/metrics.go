package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/notes-api/internal/observability/metrics"
)

func recordPoolStats(stats *pgxpool.Stat) {
	metrics.DBPoolAcquiredConnections.Set(float64(stats.AcquiredConns()))
	metrics.DBPoolIdleConnections.Set(float64(stats.IdleConns()))
	metrics.DBPoolConstructingConnections.Set(float64(stats.ConstructingConns()))
	metrics.DBPoolMaxConnections.Set(float64(stats.MaxConns()))
	metrics.DBPoolTotalConnections.Set(float64(stats.TotalConns()))
}

func tableFromOperation(operation string) string {
	operation = strings.ToLower(operation)
	switch {
	case strings.Contains(operation, "note"):
		return "notes"
	case strings.Contains(operation, "user"):
		return "users"
	default:
		return "unknown"
	}
}

// HandleQueryError records timing for a single-row query and converts
// pgx.ErrNoRows into notFoundErr.
func HandleQueryError(err error, notFoundErr error, operation string, startTime time.Time) error {
	table := tableFromOperation(operation)
	metrics.DBQueryDurationSeconds.WithLabelValues(operation, table).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFoundErr
	}
	metrics.DBQueryErrors.WithLabelValues(operation, table, fmt.Sprintf("%T", err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func HandleExecError(err error, operation string, startTime time.Time) error {
	table := tableFromOperation(operation)
	metrics.DBQueryDurationSeconds.WithLabelValues(operation, table).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	metrics.DBQueryErrors.WithLabelValues(operation, table, fmt.Sprintf("%T", err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}
