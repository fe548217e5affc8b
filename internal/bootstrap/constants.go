package bootstrap

import "os"

// File system permissions
const (
	DirPermission     os.FileMode = 0o755
	LogFilePermission os.FileMode = 0o644
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting food cost service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Store messages
const (
	LogMsgStoreOpened       = "Store opened"
	LogMsgMigrationsApplied = "Migrations applied"
	ErrMsgFailedOpenStore   = "failed to open store"
	ErrMsgFailedMigrate     = "failed to run migrations"
	ErrMsgUnknownDriver     = "unknown store driver"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingStore         = "Closing store"
)
