package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a server that can drain in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer is a resource released after the server has stopped
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Store  Closer
}

// GracefulShutdown stops the HTTP server first so no request is left
// holding a store transaction, then closes the store. Errors are logged but
// do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
