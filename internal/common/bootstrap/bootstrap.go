package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/notes-api/internal/common/config"
	"github.com/AlibekovAA/notes-api/internal/common/constants"
	"github.com/AlibekovAA/notes-api/internal/common/db"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	noterepo "github.com/AlibekovAA/notes-api/internal/note/repository"
	userrepo "github.com/AlibekovAA/notes-api/internal/user/repository"
)

// App holds the process-wide dependencies built once at startup.
type App struct {
	Config   config.Config
	Log      *logger.Logger
	Pool     *pgxpool.Pool
	UserRepo userrepo.Repository
	NoteRepo noterepo.Repository
}

// NewApp connects to the database, applies migrations when enabled and starts
// pool metrics. The returned App owns the pool; call Close on shutdown.
func NewApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	pool, err := db.NewPool(ctx, log, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if cfg.RunMigrations {
		migrateCtx, cancel := context.WithTimeout(ctx, constants.DBMigrationTimeout)
		err := db.Migrate(migrateCtx, pool, log)
		cancel()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	db.StartPoolMetrics(ctx, pool, constants.DBPoolMetricsInterval)

	return &App{
		Config:   cfg,
		Log:      log,
		Pool:     pool,
		UserRepo: userrepo.NewPgRepository(pool),
		NoteRepo: noterepo.NewPgRepository(pool),
	}, nil
}

func (a *App) Close(ctx context.Context) error {
	a.Log.Infof("closing database pool")
	a.Pool.Close()
	return nil
}
