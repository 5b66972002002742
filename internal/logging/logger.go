// Package logging builds zerolog loggers for the CLI and the overlay session.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig describes where session logs go and how they rotate.
type FileConfig struct {
	Dir        string
	SessionID  string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a zerolog logger writing to w in the configured format.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes only to a rotating session file.
// The overlay owns the terminal, so nothing is written to stderr.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if fc.Dir == "" {
		return zerolog.Nop(), func() {}, fmt.Errorf("log directory is empty")
	}
	if err := os.MkdirAll(fc.Dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to create log directory %s: %w", fc.Dir, err)
	}

	sessionID := fc.SessionID
	if sessionID == "" {
		sessionID = GenerateSessionID()
	}

	rotator, err := NewLogRotator(fc.Dir, SessionFilename(sessionID), fc.MaxSizeMB, fc.MaxBackups, fc.MaxAgeDays, fc.Compress)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := NewWithWriter(cfg, rotator).With().
		Str("session", ShortSessionID(sessionID)).
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file %s: %v\n", filepath.Join(fc.Dir, SessionFilename(sessionID)), err)
		}
	}
	return logger, cleanup, nil
}

// NewFromEnv creates a logger based on environment variables
// HYPRISLAND_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// HYPRISLAND_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("HYPRISLAND_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("HYPRISLAND_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
