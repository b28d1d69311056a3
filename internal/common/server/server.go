package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlibekovAA/notes-api/internal/common/logger"
)

type ShutdownHook func(ctx context.Context) error

// Run serves until ctx is cancelled, then drains connections and runs hooks
// in order. A listener failure is returned immediately.
func Run(ctx context.Context, server *http.Server, cfg ServerConfig, log *logger.Logger, hooks ...ShutdownHook) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("notes service listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("shutting down notes service (drain period: %v)", cfg.DrainTimeout)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	server.SetKeepAlivesEnabled(false)

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("notes service forced to shutdown: %v", err)
		shutdownErr = err
	}

	drainCtx, drainCancel := context.WithTimeout(shutdownCtx, cfg.DrainTimeout)
	defer drainCancel()

	for i, hook := range hooks {
		if err := hook(drainCtx); err != nil {
			log.Errorf("shutdown hook %d failed: %v", i, err)
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	if shutdownErr == nil {
		log.Infof("notes service stopped gracefully")
	}
	return shutdownErr
}
