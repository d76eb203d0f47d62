package bootstrap

import (
	"context"
	"log/slog"

	"github.com/mkarlsen/BloxClicker_Go/internal/game"
	"github.com/mkarlsen/BloxClicker_Go/internal/repository"
	"github.com/mkarlsen/BloxClicker_Go/internal/scheduler"
	"github.com/mkarlsen/BloxClicker_Go/internal/server"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
	"github.com/mkarlsen/BloxClicker_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
	GameService game.Service
	Hub         *sse.Hub
	Store       repository.Store
}

// GracefulShutdown stops everything in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. Scheduler, then worker pool (no new background mutations)
//  3. Game service (drain async saves, write the final save)
//  4. SSE hub, then the store
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if err := components.GameService.Shutdown(ctx); err != nil {
		slog.Error(LogMsgGameShutdownFailed, "error", err)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if err := components.Store.Close(); err != nil {
		slog.Error(LogMsgStoreCloseFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
