// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "errors"

// Sentinel errors of the router. Use [errors.Is] to test for a particular
// kind. The state, element, handler, name-lookup, and notifier errors are
// returned directly by the corresponding methods. Problems found by
// [Router.Initialize] are reported as messages to its [ErrorSink] (the
// push/pull-reuse and processing-conflict messages include the text of the
// matching sentinel), and Initialize itself returns
// [ErrRouterNotInitialized].
var (
	// ErrWrongState is returned when an operation is attempted in a
	// [State] that does not permit it (e.g. AddElement after Initialize).
	ErrWrongState = errors.New("router: wrong state for this operation")

	// ErrBadElementIndex is returned when an [Element] passed to a Router
	// method does not belong to that router.
	ErrBadElementIndex = errors.New("router: bad element index")

	// ErrBadPortIndex describes a connection that references a negative
	// port index.
	ErrBadPortIndex = errors.New("router: bad port index")

	// ErrPortOutOfRange describes a connection that references a port
	// beyond the element's declared port count.
	ErrPortOutOfRange = errors.New("router: port out of range")

	// ErrPushOutputReused describes a push-polarity output port that is
	// the source of more than one connection.
	ErrPushOutputReused = errors.New("router: can't reuse push output")

	// ErrPullInputReused describes a pull-polarity input port that is the
	// sink of more than one connection.
	ErrPullInputReused = errors.New("router: can't reuse pull input")

	// ErrPortUnused describes a port that never participates in a
	// connection.
	ErrPortUnused = errors.New("router: port unused")

	// ErrProcessingConflict describes two definite, disagreeing
	// polarities found by the push/pull resolver on either side of a
	// connection.
	ErrProcessingConflict = errors.New("router: processing conflict")

	// ErrConfigureFailed describes one or more elements failing to
	// configure.
	ErrConfigureFailed = errors.New("router: configure failed")

	// ErrInitializeFailed describes an element failing to initialize; an
	// element's Initialize may return it.
	ErrInitializeFailed = errors.New("router: initialize failed")

	// ErrHandlerNotReadable is returned by CallRead against a
	// write-only handler.
	ErrHandlerNotReadable = errors.New("router: handler not readable")

	// ErrHandlerNotWritable is returned by CallWrite against a
	// read-only handler.
	ErrHandlerNotWritable = errors.New("router: handler not writable")

	// ErrHandlerTakesNoParam is returned by CallRead with a non-empty
	// param against a handler that does not accept one.
	ErrHandlerTakesNoParam = errors.New("router: handler takes no parameter")

	// ErrHandlerNotFound is returned when no handler matches the
	// requested name.
	ErrHandlerNotFound = errors.New("router: handler not found")

	// ErrAmbiguousName is returned by Find when two elements match at the
	// same lexical scope.
	ErrAmbiguousName = errors.New("router: ambiguous element name")

	// ErrNameNotFound is returned by Find when no element matches.
	ErrNameNotFound = errors.New("router: no element with that name")

	// ErrNotifierCapacityExhausted is returned by NewNotifierSignal once
	// the fixed-capacity signal bank is full.
	ErrNotifierCapacityExhausted = errors.New("router: notifier signal capacity exhausted")

	// ErrRouterNotInitialized is the summary error returned by Initialize
	// when validation or lifecycle failures occurred, matching Click's
	// "Router could not be initialized!" message.
	ErrRouterNotInitialized = errors.New("router: could not be initialized")
)
