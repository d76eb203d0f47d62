package bootstrap

import (
	"log/slog"

	"github.com/mkarlsen/BloxClicker_Go/internal/config"
	"github.com/mkarlsen/BloxClicker_Go/internal/handler"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
)

// SetupLogger installs the process default logger from application config.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"blox-clicker",
		handler.Version,
		cfg.Environment,
		false,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingServer,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"save_backend", cfg.SaveBackend,
		"version", handler.Version)
}
