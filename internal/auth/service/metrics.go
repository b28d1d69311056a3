package service

import (
	"github.com/AlibekovAA/notes-api/internal/observability/metrics"
)

func recordRegistration(result string) {
	metrics.RegistrationsTotal.WithLabelValues(result).Inc()
}

func recordLogin(result string) {
	metrics.LoginsTotal.WithLabelValues(result).Inc()
}

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}
