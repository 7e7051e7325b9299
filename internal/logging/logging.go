// Package logging builds the structured logger shared by cmd/scheduler-sim
// and pkg/bridge.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// BuildLogger returns a JSON slog.Logger at the given level ("debug",
// "info", "warn", "error"). Unknown levels fall back to info.
func BuildLogger(level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     parseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

func IntAttr(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func StringAttr(key, value string) slog.Attr {
	return slog.String(key, value)
}

func AnyAttr(key string, value any) slog.Attr {
	return slog.Any(key, value)
}
