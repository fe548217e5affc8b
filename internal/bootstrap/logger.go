package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/FoodCost_Go/internal/config"
	"github.com/osse101/FoodCost_Go/internal/logger"
)

// SetupLogger initializes the application logger. When cfg.LogDir is set,
// logs also go to a timestamped session file in that directory and older
// session files beyond the retention count are removed.
// The returned file is nil when logging to stdout only; otherwise the caller
// must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	var logFile *os.File
	out := stdout
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_driver", cfg.DBDriver,
		"sqlite_path", cfg.SQLitePath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"currency", cfg.Currency)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	// Session names embed a sortable timestamp
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
