// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger used by the latred command.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// RunIDField is the log field carrying the per-invocation id.
const RunIDField = "run_id"

// New returns a logger writing to w at the given level.
// Console output is human readable; JSON output is one object per line.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case FormatConsole, "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case FormatJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// ParseLevel accepts zerolog level names case-insensitively; "" means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// WithRunID tags logger with a fresh run id and returns both.
func WithRunID(logger zerolog.Logger) (zerolog.Logger, uuid.UUID) {
	id := uuid.New()

	return logger.With().Str(RunIDField, id.String()).Logger(), id
}
