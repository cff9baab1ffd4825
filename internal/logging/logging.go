// Package logging provides zerolog-based structured logging for EcoLedger.
//
// Loggers travel on the context: commands attach a configured logger with
// ContextWithLogger and engine code retrieves it with FromContext, adding
// component/operation fields at the call site.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level string ("debug", "info", "warn", ...).
	// Unparseable values fall back to info.
	Level string

	// Format selects "console" (human-readable) or "json" output.
	Format string

	// File is an optional log file path. When set, output goes to the
	// file in addition to stderr.
	File string
}

// New builds a zerolog.Logger from cfg. It never fails: an unopenable log
// file degrades to stderr-only output and the open error is reported on the
// returned logger itself.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	var fileErr error
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, f)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("file", cfg.File).
			Msg("could not open log file, logging to stderr only")
	}

	return logger
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// ContextWithLogger attaches logger to ctx.
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// none is attached. Engine code always logs through this so that library
// callers who never configured logging get silence, not surprise output.
func FromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	return logger
}
