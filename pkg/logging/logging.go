package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	JSON  bool
	// File enables a rotated log file written next to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup builds the process logger, installs it as slog default and returns
// a closer for the log file (no-op without one).
func Setup(opts Options) (*slog.Logger, func() error) {
	var out io.Writer = os.Stdout
	closer := func() error { return nil }
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotated)
		closer = rotated.Close
	}
	logger := New(out, opts.Level, opts.JSON)
	slog.SetDefault(logger)
	return logger, closer
}

func New(w io.Writer, level string, json bool) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
