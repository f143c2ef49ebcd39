// SPDX-License-Identifier: GPL-3.0-or-later

package router

// SchedulerThread is one worker thread of an external scheduler, woken by
// the runcount machinery when it reaches a stop condition.
// Grounded on Master::_threads / RouterThread::wake in router.cc.
type SchedulerThread interface {
	// Wake requests that the thread re-check the router's stop
	// condition at its next safe point. Must not block.
	Wake()
}

// Master is the external scheduler collaborator: the core calls into it at
// well-defined lifecycle points but never owns or drives it. Grounded on
// Master::prepare_router/run_router/kill_router in router.cc.
type Master interface {
	// PrepareRouter is called once, right before the router's first
	// element initializes, so the scheduler can reserve resources.
	PrepareRouter(r *Router) error

	// RunRouter is called by Activate once the router is LIVE,
	// requesting that the scheduler begin driving elements. foreground
	// mirrors Router.Activate's argument.
	RunRouter(r *Router, foreground bool) error

	// KillRouter is called during rollback or hotswap so the scheduler
	// stops driving a router that is about to die.
	KillRouter(r *Router)

	// Threads returns the scheduler's worker threads, woken by
	// Router.AdjustRuncount/SetRuncount whenever the runcount crosses to
	// a non-positive value.
	Threads() []SchedulerThread
}

// nullMaster is a no-op [Master] used as [Config]'s default: it satisfies
// the contract without actually scheduling anything, for embedders that
// only need the lifecycle/validation core and drive elements themselves.
type nullMaster struct{}

// NewNullMaster returns a [Master] whose methods are no-ops, suitable as a
// default for callers that only want graph validation and lifecycle, not an
// actual scheduler.
func NewNullMaster() Master {
	return nullMaster{}
}

func (nullMaster) PrepareRouter(*Router) error       { return nil }
func (nullMaster) RunRouter(*Router, bool) error      { return nil }
func (nullMaster) KillRouter(*Router)                 {}
func (nullMaster) Threads() []SchedulerThread         { return nil }
