package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the process logger. Debug mode lowers the level regardless of
// the configured one.
func New(level string, debug bool) *slog.Logger {
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level, debug),
	})
	return slog.New(h)
}

func parseLevel(level string, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
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
