package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotesOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_operations_total",
			Help: "Total number of note operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	NotesOwnershipDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_ownership_denied_total",
			Help: "Total number of note operations rejected by the ownership check",
		},
		[]string{"operation"},
	)
)
