// Package logging provides the structured logger shared across layers.
// Loggers travel through context so adapters and use cases never hold
// a logger field of their own.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger defines the minimal logging interface used across layers.
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...any)
	Info(ctx context.Context, msg string, kv ...any)
	Warn(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, kv ...any)
	Errorf(ctx context.Context, format string, args ...any)
	With(kv ...any) Logger
}

type contextKey struct{}

var loggerKey contextKey

// WithLogger stores a logger in context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves a logger from context, returning a default
// stderr text logger when absent.
func FromContext(ctx context.Context) Logger {
	if v, ok := ctx.Value(loggerKey).(Logger); ok && v != nil {
		return v
	}
	return &slogLogger{logger: slog.Default()}
}

// New constructs a Logger of the given format (human|text|json) writing
// to stderr.
func New(format string, level slog.Leveler) (Logger, error) {
	return NewWithWriter(format, level, os.Stderr)
}

// NewWithWriter constructs a Logger of the given format, level, and writer.
func NewWithWriter(format string, level slog.Leveler, w io.Writer) (Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", "human":
		// The std log flavor of slog output, friendlier on a terminal.
		slog.SetLogLoggerLevel(level.Level())
		if w == os.Stderr {
			return &slogLogger{logger: slog.Default()}, nil
		}
		return &slogLogger{logger: slog.New(slog.NewTextHandler(w, opts))}, nil
	case "text":
		return &slogLogger{logger: slog.New(slog.NewTextHandler(w, opts))}, nil
	case "json":
		return &slogLogger{logger: slog.New(slog.NewJSONHandler(w, opts))}, nil
	default:
		return nil, errors.New("unsupported log format: " + format)
	}
}

// slogLogger adapts slog.Logger to Logger.
type slogLogger struct{ logger *slog.Logger }

func (l *slogLogger) Debug(ctx context.Context, msg string, kv ...any) {
	l.logger.DebugContext(ctx, msg, kv...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, kv ...any) {
	l.logger.InfoContext(ctx, msg, kv...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, kv ...any) {
	l.logger.WarnContext(ctx, msg, kv...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, kv ...any) {
	l.logger.ErrorContext(ctx, msg, kv...)
}

func (l *slogLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogLogger) With(kv ...any) Logger {
	return &slogLogger{logger: l.logger.With(kv...)}
}
