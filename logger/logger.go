package logger

import "context"

// Logger is the structured logging interface shared by stores and handlers.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(ctx context.Context, msg string, fields map[string]interface{})

	// Info logs an info-level message with optional fields
	Info(ctx context.Context, msg string, fields map[string]interface{})

	// Warn logs a warning-level message with optional fields
	Warn(ctx context.Context, msg string, fields map[string]interface{})

	// Error logs an error-level message with optional fields
	Error(ctx context.Context, msg string, fields map[string]interface{})

	// WithField returns a new logger carrying the field on every entry
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger carrying the fields on every entry
	WithFields(fields map[string]interface{}) Logger
}
