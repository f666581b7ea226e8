// Package logger carries a zap logger through context so that request-scoped
// fields (request ID, domain under scan, ...) follow the call chain.
package logger

import (
	"context"

	"go.uber.org/zap"
)

const (
	// DevelopmentEnvironment selects a human-readable, debug-level logger.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment selects a JSON, info-level logger.
	ProductionEnvironment = "production"
)

// defaultLogger is used whenever a context carries no logger of its own.
var defaultLogger *zap.Logger //nolint: gochecknoglobals

// Setup initializes the default logger for the given environment. It must be
// called once at process start, before anything logs.
func Setup(environment string) {
	if environment == ProductionEnvironment {
		defaultLogger, _ = zap.NewProduction()

		return
	}

	defaultLogger, _ = zap.NewDevelopment()
}

// ctxKey keys the logger stored in a context.
type ctxKey struct{}

// Get returns the logger attached to ctx, falling back to the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(ctxKey{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithFields returns a context whose logger always emits the given fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the context's logger emits debug-level entries.
// Callers use it to skip building expensive debug payloads.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

// Debug logs at debug level using the context's logger.
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs at info level using the context's logger.
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs at warn level using the context's logger.
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs at error level using the context's logger.
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level using the context's logger and exits.
func Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	Get(ctx).Fatal(msg, fields...)
}
