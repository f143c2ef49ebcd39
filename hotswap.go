// SPDX-License-Identifier: GPL-3.0-or-later

package router

// Activate must follow a successful [Router.Initialize]. If a hotswap
// predecessor was set (see [Router.SetHotswapRouter]) and it is still
// [StateLive], Activate kills its scheduling first, then walks this
// router's elements in configure order giving each a chance to adopt the
// predecessor's live state via [HotswapCapable]/[StateTaker], then releases
// the predecessor before finally asking the [Master] to run this router.
// Grounded on Router::activate/Router::set_hotswap_router.
func (r *Router) Activate(foreground bool, sink ErrorSink) error {
	r.mu.Lock()
	if r.state != StateLive {
		r.mu.Unlock()
		return ErrWrongState
	}
	predecessor := r.hotswapPredecessor
	order := r.configureOrder
	r.mu.Unlock()

	if predecessor != nil && predecessor.State() == StateLive {
		if predecessor.master != nil {
			predecessor.master.KillRouter(predecessor)
		}
		r.takeHotswapState(predecessor, order, sink)
		r.mu.Lock()
		r.hotswapPredecessor = nil
		r.mu.Unlock()
	}

	r.mu.Lock()
	if foreground {
		r.running = RunningActive
	} else {
		r.running = RunningBackground
	}
	r.mu.Unlock()

	if r.master == nil {
		return nil
	}
	return r.master.RunRouter(r, foreground)
}

// takeHotswapState gives every element that implements [HotswapCapable] a
// chance to find its predecessor counterpart and, if the element also
// implements [StateTaker], absorb its live state.
func (r *Router) takeHotswapState(predecessor *Router, order []int, sink ErrorSink) {
	for _, idx := range order {
		e := r.elements[idx]
		capable, ok := e.(HotswapCapable)
		if !ok {
			continue
		}
		other := capable.HotswapElement(predecessor)
		if other == nil {
			continue
		}
		taker, ok := e.(StateTaker)
		if !ok {
			continue
		}
		ctx := newContextErrorSink(sink, "While hotswapping "+r.names[idx]+":")
		if err := taker.TakeState(other, ctx); err != nil {
			ctx.Error("%s", err)
		}
	}
}
