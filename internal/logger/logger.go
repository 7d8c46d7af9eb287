// Package logger configures the process-wide log/slog logger.
// JSON output with source locations is the default so that logs can be
// consumed by aggregation systems; text output is available for local runs.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Setup installs a JSON logger writing to w as the slog default.
func Setup(w io.Writer, level slog.Level) {
	SetupFormat(w, "json", level)
}

// SetupFormat installs a logger in the given format ("json" or "text").
// Unrecognized formats fall back to JSON.
func SetupFormat(w io.Writer, format string, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(w, format, level)))
}

// NewHandler builds a slog.Handler with source location tracking.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel converts a string log level to slog.Level.
// Valid values: "debug", "info", "warn", "error".
// Unrecognized values default to info level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
