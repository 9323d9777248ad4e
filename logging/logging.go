// SPDX-License-Identifier: MIT

// Package logging builds the structured slog loggers used across waypath.
//
// Two output formats are supported: "text" (slog.TextHandler, the default,
// for terminals) and "json" (slog.JSONHandler, for log shippers). Levels
// are "debug", "info", "warn" and "error".
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for logger construction.
var (
	// ErrInvalidLevel indicates an unrecognised level name.
	ErrInvalidLevel = errors.New("logging: invalid level")

	// ErrInvalidFormat indicates an unrecognised output format.
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a level name to a slog.Level. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// ValidFormat reports whether format names a supported output format.
// The empty string means text.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, FormatJSON, "":
		return true
	default:
		return false
	}
}

// New returns a logger writing to w at the given level and format.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
