// Package port contains the port interfaces (driven ports) for the application layer.
// The measurement engine itself needs nothing from the outside; the only driven
// port is logging, used by the application service that fronts it.
package port

import (
	"context"
)

// Logger defines the interface for structured logging.
// The production adapter wraps pkg/logger (zap).
//
// Example usage:
//
//	log.Debug("Area calculated", "shape", shape.Kind(), "area_sqm", result.AreaSqm)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}
