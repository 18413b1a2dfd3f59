package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithPaneName creates a child logger with a pane field
func WithPaneName(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("pane", name).Logger()
	return WithContext(ctx, childLogger)
}

// WithTheme creates a child logger with a theme field
func WithTheme(ctx context.Context, themeName string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("theme", themeName).Logger()
	return WithContext(ctx, childLogger)
}
