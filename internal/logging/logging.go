// Package logging builds the zerolog logger shared by every front end.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"streamfilter/internal/config"
)

// Sink says where log output goes when no file is configured.
type Sink int

const (
	// Stderr is used by the one-shot and console commands.
	Stderr Sink = iota
	// Discard is used by the TUI and GUI, which own the terminal or window.
	Discard
)

// New returns a logger configured from cfg and a closer for its output.
// A configured file always wins over the fallback sink.
func New(cfg config.LogConfig, fallback Sink) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var w io.Writer
	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	case fallback == Discard:
		return zerolog.Nop(), closer, nil
	default:
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return NewWithWriter(w, level), closer, nil
}

// NewWithWriter returns a timestamped logger writing to w at level.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
// An empty string means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
