package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarlsen/BloxClicker_Go/internal/config"
	"github.com/mkarlsen/BloxClicker_Go/internal/database"
	"github.com/mkarlsen/BloxClicker_Go/internal/handler"
	"github.com/mkarlsen/BloxClicker_Go/internal/repository"
)

// OpenStore builds the configured save backend. The returned checker feeds the
// readiness probe and is nil for the file backend, which has nothing to probe.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, handler.HealthChecker, error) {
	switch cfg.SaveBackend {
	case config.SaveBackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), DBMaxConnections, DBMaxIdleTime, DBMaxLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Info(LogMsgUsingPostgresStore, "db_host", cfg.DBHost, "db_name", cfg.DBName, "save_key", cfg.SaveKey)
		return repository.NewPostgresStore(pool, cfg.SaveKey), &poolChecker{pool: pool}, nil

	default:
		store, err := repository.NewFileStore(cfg.SavePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open save file: %w", err)
		}
		slog.Info(LogMsgUsingFileStore, "path", cfg.SavePath)
		return store, nil, nil
	}
}

// poolChecker adapts a pgx pool to the readiness probe.
type poolChecker struct {
	pool *pgxpool.Pool
}

func (c *poolChecker) CheckHealth(ctx context.Context) error {
	return c.pool.Ping(ctx)
}
