package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FoodCost_Go/internal/config"
	"github.com/osse101/FoodCost_Go/internal/database"
	"github.com/osse101/FoodCost_Go/internal/database/postgres"
	"github.com/osse101/FoodCost_Go/internal/database/sqlite"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// OpenStore connects to the configured backend and brings its schema up to date.
// The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		applied, err := database.Migrate(ctx, db, database.DialectSQLite)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied, "driver", cfg.DBDriver, "count", applied)
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver, "path", cfg.SQLitePath)
		return sqlite.NewStore(db), nil

	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		applied, err := database.MigratePool(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied, "driver", cfg.DBDriver, "count", applied)
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.NewStore(pool), nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.DBDriver)
}
