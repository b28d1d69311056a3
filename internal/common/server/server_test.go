package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/AlibekovAA/notes-api/internal/common/logger"
)

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig("")
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Addr)
	}
	if DefaultServerConfig("9000").Addr != ":9000" {
		t.Error("expected explicit port to be used")
	}
}

func TestRun_ShutdownRunsHooks(t *testing.T) {
	cfg := DefaultServerConfig("0")
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	cfg.DrainTimeout = time.Second
	srv := NewServer(cfg, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called []int
	hookErr := errors.New("hook failed")
	err := Run(ctx, srv, cfg, logger.Discard(),
		func(context.Context) error { called = append(called, 1); return nil },
		func(context.Context) error { called = append(called, 2); return hookErr },
	)

	if !errors.Is(err, hookErr) {
		t.Errorf("expected hook error to be returned, got %v", err)
	}
	if len(called) != 2 || called[0] != 1 || called[1] != 2 {
		t.Errorf("expected hooks to run in order, got %v", called)
	}
}
