package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/AlibekovAA/notes-api/internal/auth/http"
	authservice "github.com/AlibekovAA/notes-api/internal/auth/service"
	"github.com/AlibekovAA/notes-api/internal/common/bootstrap"
	"github.com/AlibekovAA/notes-api/internal/common/clock"
	"github.com/AlibekovAA/notes-api/internal/common/config"
	commoncrypto "github.com/AlibekovAA/notes-api/internal/common/crypto"
	commonhttp "github.com/AlibekovAA/notes-api/internal/common/http"
	"github.com/AlibekovAA/notes-api/internal/common/jwtverify"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	srv "github.com/AlibekovAA/notes-api/internal/common/server"
	notedomain "github.com/AlibekovAA/notes-api/internal/note/domain"
	notehttp "github.com/AlibekovAA/notes-api/internal/note/http"
	noteservice "github.com/AlibekovAA/notes-api/internal/note/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogDir, "notes", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	clk := clock.NewRealClock()
	idGenerator := commoncrypto.NewUUIDGenerator()
	hasher := commoncrypto.NewBcryptHasher(cfg.BcryptCost)
	issuer := authservice.NewTokenIssuer(cfg.JWTSecret, idGenerator, cfg.AccessTokenTTL, clk)
	verifier := jwtverify.NewVerifier(cfg.JWTSecret, clk)

	listPolicy := notedomain.IncludeDeleted
	if cfg.ListExcludeDeleted {
		listPolicy = notedomain.ExcludeDeleted
	}

	authService := authservice.NewAuthService(app.UserRepo, hasher, idGenerator, issuer, clk, log)
	noteService := noteservice.NewNoteService(app.NoteRepo, idGenerator, clk, listPolicy, log)

	authHandler := authhttp.NewHandler(authService, cfg.RequestTimeout, log)
	noteHandler := notehttp.NewHandler(noteService, verifier, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/api/auth/", authHandler)
	mux.Handle("/api/notes", noteHandler)
	mux.Handle("/api/notes/", noteHandler)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log, func(ctx context.Context) error {
		return app.Pool.Ping(ctx)
	}))
	mux.Handle("/metrics", promhttp.Handler())

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, commonhttp.BuildBaseHandler(log, mux))

	log.Infof("notes service starting: list policy=%s", listPolicy)

	if err := srv.Run(ctx, server, serverConfig, log, app.Close); err != nil {
		log.Errorf("notes service exited with error: %v", err)
		os.Exit(1)
	}
}
