// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "time"

// Config holds common configuration for a [Router].
//
// Pass this to [NewRouter] to pre-wire dependencies. All fields have
// sensible defaults set by [NewConfig].
type Config struct {
	// Logger is the [SLogger] used for lifecycle and validation events.
	//
	// Set by [NewConfig] to [DefaultSLogger].
	Logger SLogger

	// ErrSink receives validation and lifecycle errors when the caller of
	// [Router.Initialize] passes a nil sink.
	//
	// Set by [NewConfig] to [NewCollectingErrorSink].
	ErrSink ErrorSink

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time

	// Master is the scheduler collaborator notified of lifecycle transitions.
	//
	// Set by [NewConfig] to a no-op [Master].
	Master Master
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Logger:  DefaultSLogger(),
		ErrSink: NewCollectingErrorSink(),
		TimeNow: time.Now,
		Master:  NewNullMaster(),
	}
}
