// Package xlog configures structured logging for the application on top of
// log/slog.
package xlog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(New(NewConfig()))
}

// Default returns the default Logger.
func Default() *slog.Logger { return defaultLogger.Load().(*slog.Logger) }

// SetDefault makes l the default Logger.
func SetDefault(l *slog.Logger) { defaultLogger.Store(l) }

// Debug calls Logger.Debug on the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info calls Logger.Info on the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn calls Logger.Warn on the default logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Error calls Logger.Error on the default logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

type contextKey struct{}

// FromContext gets the Logger from the context, falling back to the default
// one.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}

// WithContext injects a Logger carrying the extra attributes into the
// context and returns the child context.
func WithContext(ctx context.Context, args ...any) context.Context {
	logger := FromContext(ctx)
	return context.WithValue(ctx, contextKey{}, logger.With(args...))
}
