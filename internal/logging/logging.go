package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New builds the process logger. Diagnostics go to stderr so stdout stays
// clean JSON for piping. Level comes from VOYAGE_LOG (debug|info|warn|error).
func New() *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("VOYAGE_LOG")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(handler)
}
