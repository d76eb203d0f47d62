package bootstrap

import "time"

// Worker pool sizing
const (
	WorkerCount     = 2
	WorkerQueueSize = 16
)

// Background job intervals
const (
	AutoTickInterval   = 1 * time.Second
	EventSweepInterval = 1 * time.Second
)

// Database pool settings
const (
	DBMaxConnections = 10
	DBMaxIdleTime    = 5 * time.Minute
	DBMaxLifetime    = 30 * time.Minute
)

// ShutdownTimeout bounds the whole graceful shutdown sequence.
const ShutdownTimeout = 10 * time.Second

// Log messages for startup and shutdown
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingServer       = "Starting BloxClicker"
	LogMsgUsingFileStore       = "Using file save backend"
	LogMsgUsingPostgresStore   = "Using postgres save backend"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgGameShutdownFailed   = "Game service shutdown failed"
	LogMsgStoreCloseFailed     = "Store close failed"
	LogMsgServerStopped        = "Server stopped"
)
