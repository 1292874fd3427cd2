package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns the application logger writing to stdout.
// Production uses a JSON handler; otherwise a text handler. See NewLoggerTo.
func NewLogger(environment string) *slog.Logger {
	return NewLoggerTo(os.Stdout, environment, os.Getenv("LOG_LEVEL"))
}

// NewLoggerTo builds a logger writing to w. level may be debug, info, warn or error (default: info).
func NewLoggerTo(w io.Writer, environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
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
