package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/Domenick1991/airline/config"
)

// New returns a JSON logger on stdout at the configured level and installs it
// as the slog default.
func New(cfg config.LogConfig) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

func NewWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return logger
}
