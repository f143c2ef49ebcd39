// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "fmt"

// ErrorKind classifies a message reported to an [ErrorSink].
type ErrorKind int

const (
	// ErrorKindMessage is an informational message.
	ErrorKindMessage ErrorKind = iota

	// ErrorKindWarning is a non-fatal warning.
	ErrorKindWarning

	// ErrorKindError is a fatal error.
	ErrorKindError
)

// ErrorSink is a polymorphic error reporter, the router's analogue of
// Click's ErrorHandler. Implementations decide how to surface messages
// (collect them, log them, forward them to a channel, ...).
type ErrorSink interface {
	// Error reports a fatal, unlocated error.
	Error(format string, args ...any)

	// Warningf reports a non-fatal, unlocated warning.
	Warningf(format string, args ...any)

	// Messagef reports an informational, unlocated message.
	Messagef(format string, args ...any)

	// VError reports a message of the given kind, located at landmark.
	VError(kind ErrorKind, landmark, format string, args ...any)

	// NErrors returns the number of ErrorKindError messages reported so far.
	NErrors() int
}

// CollectingErrorSink is an [ErrorSink] that appends every reported message
// to an in-memory slice. This is the router's default sink (see
// [NewConfig]) and a convenient sink for tests.
type CollectingErrorSink struct {
	// Messages holds every message reported so far, most recent last.
	Messages []string

	nerrors int
}

var _ ErrorSink = &CollectingErrorSink{}

// NewCollectingErrorSink returns a new, empty [*CollectingErrorSink].
func NewCollectingErrorSink() *CollectingErrorSink {
	return &CollectingErrorSink{}
}

// Error implements [ErrorSink].
func (s *CollectingErrorSink) Error(format string, args ...any) {
	s.VError(ErrorKindError, "", format, args...)
}

// Warningf implements [ErrorSink].
func (s *CollectingErrorSink) Warningf(format string, args ...any) {
	s.VError(ErrorKindWarning, "", format, args...)
}

// Messagef implements [ErrorSink].
func (s *CollectingErrorSink) Messagef(format string, args ...any) {
	s.VError(ErrorKindMessage, "", format, args...)
}

// VError implements [ErrorSink].
func (s *CollectingErrorSink) VError(kind ErrorKind, landmark, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if landmark != "" {
		msg = landmark + ": " + msg
	}
	s.Messages = append(s.Messages, msg)
	if kind == ErrorKindError {
		s.nerrors++
	}
}

// NErrors implements [ErrorSink].
func (s *CollectingErrorSink) NErrors() int {
	return s.nerrors
}

// contextErrorSink wraps an [ErrorSink] so that every reported message is
// prefixed with a fixed context string, matching Click's
// ContextErrorHandler used to prefix per-element errors with "While
// configuring <element>:" / "While initializing <element>:".
type contextErrorSink struct {
	inner   ErrorSink
	context string
}

var _ ErrorSink = &contextErrorSink{}

func newContextErrorSink(inner ErrorSink, context string) *contextErrorSink {
	return &contextErrorSink{inner: inner, context: context}
}

func (s *contextErrorSink) prefix(format string) string {
	return s.context + " " + format
}

func (s *contextErrorSink) Error(format string, args ...any) {
	s.inner.Error(s.prefix(format), args...)
}

func (s *contextErrorSink) Warningf(format string, args ...any) {
	s.inner.Warningf(s.prefix(format), args...)
}

func (s *contextErrorSink) Messagef(format string, args ...any) {
	s.inner.Messagef(s.prefix(format), args...)
}

func (s *contextErrorSink) VError(kind ErrorKind, landmark, format string, args ...any) {
	s.inner.VError(kind, landmark, s.prefix(format), args...)
}

func (s *contextErrorSink) NErrors() int {
	return s.inner.NErrors()
}
