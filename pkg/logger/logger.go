package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs a JSON slog logger as the default. level is debug, info, warn or error.
func Init(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	slog.Info("logger initialized", "level", lvl.String())
	return logger
}
