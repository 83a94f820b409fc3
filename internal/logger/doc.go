// Package logger wraps the Zap logging library behind context-aware helpers.
// A process-wide logger with an atomic level is created at init time and can be
// swapped or re-leveled once the configuration is known. Helpers exist for plain,
// formatted, and key-value logging at every level, and a context can carry its
// own logger for scoped overrides. Level parsing accepts the usual config
// strings ("debug", "info", ...) case-insensitively.
package logger
