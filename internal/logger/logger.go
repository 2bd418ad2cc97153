// Package logger sets up the global structured logger. Log output goes to a
// rotating file, never the terminal: the terminal belongs to the editor.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger
	Log *slog.Logger
	// logWriter is the rotating log writer
	logWriter *lumberjack.Logger
)

// Init initializes the global logger with the given level. Unknown levels
// fall back to info. If path is empty, logs go to ~/.config/mktxt/mktxt.log.
func Init(level, path string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.TempDir()
		}
		logDir := filepath.Join(homeDir, ".config", "mktxt")
		_ = os.MkdirAll(logDir, 0o755)
		path = filepath.Join(logDir, "mktxt.log")
	}

	logWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	Log = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(Log)
	return Log
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}
