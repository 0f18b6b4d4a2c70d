package logger

import (
	"log/slog"
	"os"
)

// New creates a preconfigured slog.Logger for the membership service.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "membership"))
}
