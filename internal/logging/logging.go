// Package logging builds the slog logger used by softwrap.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/iw2rmb/softwrap/internal/config"
)

// New returns a logger writing to cfg.Path. The returned close function must be
// called on exit. With an empty path the logger discards everything.
//
// Records carry a short session id since several runs append to one file.
func New(cfg config.Log) (*slog.Logger, func() error, error) {
	if cfg.Path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", cfg.Path, err)
	}
	logger := slog.New(newHandler(f, cfg.Format, level)).With(
		slog.String("component", "softwrap"),
		slog.String("session", uuid.New().String()[:8]),
	)
	return logger, f.Close, nil
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps a config level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
