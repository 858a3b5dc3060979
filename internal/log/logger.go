// Package log is a thin layer over log/slog: one constructor that maps
// the configured level, plus per-component child loggers so every line
// says which part of the application produced it.
package log

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the root logger writing text lines to stdout at the given
// level and installs it as the slog default.
func New(level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

// ForComponent returns a child logger tagged with the component name.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info for
// anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
