// SPDX-License-Identifier: GPL-3.0-or-later

package router

// SLogger abstracts the [*slog.Logger] behavior.
//
// By using an abstraction we allow for unit testing and alternative
// implementations.
//
// This package uses two log levels:
//   - Info for router-level events (router live, router dead, handler
//     installation, runcount changes)
//   - Debug for fine-grained bookkeeping (router creation, per-element
//     configure/initialize start and done, notifier allocation)
//
// The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger returns the default [SLogger] to use.
//
// The default is a no-op logger that discards all output. This follows the
// library convention of not writing to stdout/stderr unless explicitly
// configured.
//
// Use a custom [*slog.Logger] for emitting logs.
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

// spanSLogger wraps an [SLogger] so that every log line carries the owning
// [*Router]'s span ID without every call site having to pass it. A process
// can host more than one router (e.g. across a hotswap), so "span_id" is
// what lets their interleaved Debug/Info lines be told apart downstream.
type spanSLogger struct {
	inner  SLogger
	spanID string
}

var _ SLogger = spanSLogger{}

// newSpanSLogger returns an [SLogger] that prefixes every call's args with
// "span_id", spanID before forwarding to inner.
func newSpanSLogger(inner SLogger, spanID string) spanSLogger {
	return spanSLogger{inner: inner, spanID: spanID}
}

func (l spanSLogger) withSpan(args []any) []any {
	return append([]any{"span_id", l.spanID}, args...)
}

// Debug implements [SLogger].
func (l spanSLogger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, l.withSpan(args)...)
}

// Info implements [SLogger].
func (l spanSLogger) Info(msg string, args ...any) {
	l.inner.Info(msg, l.withSpan(args)...)
}
