//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop slogger.go — same abstraction,
// extended with Warn/Error since a Redis client surfaces more failure
// modes (driver errors, pub/sub teardown, transaction aborts) than a
// network measurement primitive.
//

package ioredis

// SLogger abstracts the [*slog.Logger] behavior used throughout the
// adapter for structured logging.
//
// This package logs at three of the four levels:
//   - Info for connection lifecycle events (connect start and done)
//   - Warn for recoverable failures (pub/sub poll-loop transient errors)
//   - Error for background connection errors that have no "error"
//     listener, and for fatal pub/sub poll-loop errors
//
// The package itself emits no Debug entries.
//
// The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultSLogger returns the default [SLogger].
//
// The default is a no-op logger that discards all output, following the
// library convention of not writing to stdout/stderr unless explicitly
// configured. Use a custom [*slog.Logger] for emitting logs.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

// discardSLogger is a no-op [SLogger] that discards all log messages.
type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements [SLogger].
func (discardSLogger) Debug(msg string, args ...any) {
	// nothing
}

// Info implements [SLogger].
func (discardSLogger) Info(msg string, args ...any) {
	// nothing
}

// Warn implements [SLogger].
func (discardSLogger) Warn(msg string, args ...any) {
	// nothing
}

// Error implements [SLogger].
func (discardSLogger) Error(msg string, args ...any) {
	// nothing
}
