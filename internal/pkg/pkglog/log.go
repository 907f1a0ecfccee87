package pkglog

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogging sets the process-wide slog default to a JSON handler.
// The level comes from LOG_LEVEL (debug|info|warn|error), default info.
func InitLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
