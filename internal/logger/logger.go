// Package logger provides structured logging for the feedback service.
// It wraps log/slog so every package logs through one configured handler
// with consistent snake_case field names.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the default logger instance.
var Logger *slog.Logger

// OutputFormat selects the handler used for log lines.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

func init() {
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat maps a config format name to an OutputFormat.
func ParseFormat(format string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(format))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format %q", format)
	}
}

// Configure replaces the default logger. A nil writer means stdout.
func Configure(w io.Writer, level slog.Level, format OutputFormat) {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatText:
		Logger = slog.New(slog.NewTextHandler(w, opts))
	default:
		Logger = slog.New(slog.NewJSONHandler(w, opts))
	}
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// WithRequest returns a logger tagged with the request ID.
func WithRequest(requestID string) *slog.Logger {
	return Logger.With(slog.String("request_id", requestID))
}

// WithComponent returns a logger tagged with the emitting component.
func WithComponent(component string) *slog.Logger {
	return Logger.With(slog.String("component", component))
}
