package http

import (
	"net/http"
	"runtime/debug"

	"github.com/AlibekovAA/notes-api/internal/common/logger"
	"github.com/AlibekovAA/notes-api/internal/observability/metrics"
)

func RecoveryMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					metrics.PanicsRecovered.Inc()
					log.WithFields(r.Context(), logger.Fields{
						"path":   r.URL.Path,
						"method": r.Method,
						"action": "panic_recovered",
					}).Errorf("panic recovered: %v\n%s", err, debug.Stack())
					WriteErrorEnvelope(w, http.StatusInternalServerError, CodeInternal, "internal server error", nil, TraceIDFromContext(r.Context()))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
