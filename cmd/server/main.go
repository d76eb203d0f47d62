package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkarlsen/BloxClicker_Go/internal/bootstrap"
	"github.com/mkarlsen/BloxClicker_Go/internal/config"
	"github.com/mkarlsen/BloxClicker_Go/internal/game"
	"github.com/mkarlsen/BloxClicker_Go/internal/genai"
	"github.com/mkarlsen/BloxClicker_Go/internal/hatch"
	"github.com/mkarlsen/BloxClicker_Go/internal/scheduler"
	"github.com/mkarlsen/BloxClicker_Go/internal/server"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
	"github.com/mkarlsen/BloxClicker_Go/internal/utils"
	"github.com/mkarlsen/BloxClicker_Go/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	ctx := context.Background()

	store, checker, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open save backend", "error", err)
		os.Exit(1)
	}

	genClient := genai.NewClient(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, utils.RandomFloat)

	hub := sse.NewHub()
	hub.Start()

	gameService, err := game.NewService(ctx, store, hub, genClient, time.Now)
	if err != nil {
		slog.Error("Failed to initialize game service", "error", err)
		os.Exit(1)
	}
	hatchService := hatch.NewService(gameService, genClient, hub)

	// Background jobs: auto-clicker income and event expiry, both on a
	// shared worker pool. Each is gated on its trigger condition so nothing
	// runs while auto power is zero or no events are active.
	pool := worker.NewPool(bootstrap.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.ScheduleWhen(bootstrap.AutoTickInterval,
		func() bool { return gameService.AutoPowerActive(ctx) },
		worker.NewAutoTickJob(gameService))
	sched.ScheduleWhen(bootstrap.EventSweepInterval,
		func() bool { return gameService.HasActiveEvents(ctx) },
		worker.NewEventSweepJob(gameService))
	sched.Start()

	srv := server.NewServer(cfg.Port, cfg.AdminKey, nil, checker, gameService, hatchService, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		Scheduler:   sched,
		WorkerPool:  pool,
		GameService: gameService,
		Hub:         hub,
		Store:       store,
	})
}
