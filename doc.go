// SPDX-License-Identifier: GPL-3.0-or-later

// Package router implements the core of a modular packet-processing router:
// a declarative graph of typed, capability-constrained elements that is
// checked, globally resolved for push/pull processing polarity, and brought
// up in dependency order with rollback on failure.
//
// # Core Abstraction
//
// The package is built around a single interface:
//
//	type Element interface {
//		ClassName() string
//		ConfigurePhase() int
//		PortCounts() (nInputs, nOutputs int)
//		ProcessingVector(inputs, outputs []Polarity)
//		PortFlow(dir Direction, port int) Bitvector
//		Configure(args []string, sink ErrorSink) error
//		Initialize(sink ErrorSink) error
//		InitializePorts(inputs, outputs []Polarity)
//		ConnectPort(isOutput bool, port int, other Element, otherPort int)
//		Cleanup(stage CleanupStage)
//		AddHandlers(r *Router)
//	}
//
// Elements are added to a [Router] with [Router.AddElement], wired together
// with [Router.AddConnection], and brought to life with [Router.Initialize].
// Element implementations must be reference types (pointers): the router
// tracks elements by interface identity.
//
// # Lifecycle
//
// A [Router] moves through a small state machine:
//
//	NEW -> PRECONFIGURE -> PREINITIALIZE -> LIVE -> DEAD
//
// Elements, connections, and requirements may only be added while NEW.
// [Router.Initialize] drives validation, port-index construction, push/pull
// resolution, configuration (in [Element.ConfigurePhase] order), and
// initialization; on any failure it unwinds to DEAD, calling
// [Element.Cleanup] on every element with the stage it actually reached, in
// the exact reverse of configure order.
//
// # Observability
//
// All lifecycle events are logged through [SLogger] (compatible with
// [log/slog]); by default logging is disabled ([DefaultSLogger] discards
// everything). Every [Router] carries a span id minted by [NewSpanID] so
// all log lines from one router's lifecycle correlate. Validation and
// lifecycle failures are reported through [ErrorSink], which the router
// wraps in a context-prefixing adapter ("While configuring <element>: ...")
// when calling into an element.
//
// # Design Boundaries
//
// This package intentionally covers only the composition substrate: the
// graph, its validation, its lifecycle, and its introspection surface.
// Executing packets, parsing a textual configuration language, scheduling
// policy, and the catalog of leaf elements that plug into the contract are
// all out of scope; see the demo subpackage for a couple of fixture
// elements used only to exercise the contract end to end.
package router
