package service

import (
	"github.com/AlibekovAA/notes-api/internal/observability/metrics"
)

func recordOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.NotesOperationsTotal.WithLabelValues(operation, result).Inc()
}

func incrementOwnershipDenied(operation string) {
	metrics.NotesOwnershipDenied.WithLabelValues(operation).Inc()
}
