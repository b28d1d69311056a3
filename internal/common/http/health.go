package http

import (
	"context"
	"net/http"
	"time"

	"github.com/AlibekovAA/notes-api/internal/common/logger"
)

type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

func HealthHandler(log *logger.Logger, checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteErrorEnvelope(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil, "")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.Warnf("health check failed: %v", err)
				WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		log.Debugf("health check request")
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
