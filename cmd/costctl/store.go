package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/osse101/FoodCost_Go/internal/bootstrap"
	"github.com/osse101/FoodCost_Go/internal/config"
	"github.com/osse101/FoodCost_Go/internal/logger"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	driverFlag = flag.String("driver", "", "store driver, sqlite or postgres (default from DB_DRIVER)")
	sqliteFlag = flag.String("sqlite", "", "sqlite database file (default from SQLITE_PATH)")
	verbose    = flag.Bool("v", false, "log store activity to stderr")
)

// loadConfig reads the environment and applies the global flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *driverFlag != "" {
		cfg.DBDriver = *driverFlag
	}
	if *sqliteFlag != "" {
		cfg.SQLitePath = *sqliteFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := logger.LogLevelWarn
	if *verbose {
		level = logger.LogLevelDebug
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, logger.LogFormatText, "costctl", cfg.Version, cfg.Environment, false), stderr)
	return cfg, nil
}

// openStore opens the configured store; the caller must Close it
func openStore(ctx context.Context) (repository.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}
