package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/FoodCost_Go/docs"
	"github.com/osse101/FoodCost_Go/internal/bootstrap"
	"github.com/osse101/FoodCost_Go/internal/config"
	"github.com/osse101/FoodCost_Go/internal/ingredient"
	"github.com/osse101/FoodCost_Go/internal/recipe"
	"github.com/osse101/FoodCost_Go/internal/server"
)

// @title Food Cost API
// @version 1.0
// @description Costs recipes from ingredient purchase prices, yields and unit conversions.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg,
		store,
		ingredient.NewService(store),
		recipe.NewService(store),
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Store: store})
}
