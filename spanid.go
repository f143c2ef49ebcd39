package router

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 identifying one router's lifecycle.
//
// Attach the span id to the configured [SLogger] (e.g. via
// [*slog.Logger.With]) so that every log line emitted during a router's
// construction, validation, configuration, and initialization can be
// correlated.
//
// This function panics if the system random number generator fails, which
// should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
