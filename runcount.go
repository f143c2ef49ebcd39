// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "math"

// StopRuncount is the sentinel runcount value that a stopped router's
// counter saturates at, grounded on Router::STOP_RUNCOUNT in router.cc.
const StopRuncount int32 = math.MinInt32 + 1

// Runcount returns the current value of the router's saturating counter.
func (r *Router) Runcount() int32 {
	return r.runcount.Load()
}

// Stopped reports whether the router's stopper flag is set, i.e. whether
// the runcount has ever crossed to a value ≤0.
func (r *Router) Stopped() bool {
	return r.stopper.Load()
}

// AdjustRuncount adds delta to the runcount, saturating at [math.MaxInt32]
// on top and [StopRuncount] on the bottom, via compare-and-swap so it is
// safe to call concurrently from any scheduler thread once the router is
// LIVE. Any transition to a value ≤0 sets the stopper flag and wakes every
// registered [SchedulerThread]. Grounded on Router::adjust_runcount.
func (r *Router) AdjustRuncount(delta int32) {
	for {
		old := r.runcount.Load()
		next := saturatingAdd(old, delta)
		if r.runcount.CompareAndSwap(old, next) {
			if next <= 0 {
				r.signalStop()
			}
			r.log.Info("runcount adjusted", "delta", delta, "value", next)
			return
		}
	}
}

// SetRuncount sets the runcount to value directly (no saturation beyond the
// type's own range), with the same stop-signaling side effect as
// [Router.AdjustRuncount]. Grounded on Router::set_runcount.
func (r *Router) SetRuncount(value int32) {
	r.runcount.Store(value)
	if value <= 0 {
		r.signalStop()
	}
	r.log.Info("runcount set", "value", value)
}

// signalStop sets the stopper flag and wakes at least one scheduler thread,
// matching Router::please_stop_driver's "wake someone up" guarantee.
func (r *Router) signalStop() {
	r.stopper.Store(true)
	if r.master == nil {
		return
	}
	threads := r.master.Threads()
	for _, t := range threads {
		t.Wake()
	}
}

// saturatingAdd adds delta to old, clamping to [StopRuncount, math.MaxInt32]
// without overflowing through int64 arithmetic.
func saturatingAdd(old, delta int32) int32 {
	sum := int64(old) + int64(delta)
	if sum > math.MaxInt32 {
		return math.MaxInt32
	}
	if sum < int64(StopRuncount) {
		return StopRuncount
	}
	return int32(sum)
}
