// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "sort"

// Initialize drives the router from [StateNew] through validation,
// configuration, and initialization, ending in [StateLive] on success or
// [StateDead] (after full rollback) on failure. Grounded on
// Router::initialize.
func (r *Router) Initialize(sink ErrorSink) error {
	if sink == nil {
		sink = r.cfg.ErrSink
	}

	r.mu.Lock()
	if r.state != StateNew {
		r.mu.Unlock()
		return ErrWrongState
	}
	r.state = StatePreconfigure
	r.mu.Unlock()

	r.checkHookupElements(sink)
	counts := r.notifyHookupRange()
	r.checkHookupRange(counts, sink, false)
	r.pidx = buildPortIndex(counts)

	inputPol, outputPol, resolved := r.resolveProcessing(counts, sink)
	completeOK := false
	if resolved {
		completeOK = r.checkHookupCompleteness(counts, inputPol, outputPol, sink)
	}

	r.setConnections()
	r.configureOrder = r.stableConfigureOrder()

	failed := sink.NErrors() > 0 || !resolved || !completeOK
	configFailed := r.runConfigurePass(sink)
	if configFailed {
		failed = true
	}

	if failed {
		r.rollback(sink)
		return ErrRouterNotInitialized
	}

	r.mu.Lock()
	r.state = StatePreinitialize
	r.mu.Unlock()

	for _, e := range r.elements {
		e.AddHandlers(r)
	}

	if r.master != nil {
		if err := r.master.PrepareRouter(r); err != nil {
			sink.Error("%s", err)
			r.rollback(sink)
			return ErrRouterNotInitialized
		}
	}

	if !r.runInitializePass(sink) {
		r.rollback(sink)
		return ErrRouterNotInitialized
	}

	r.mu.Lock()
	r.state = StateLive
	r.mu.Unlock()
	r.SetRuncount(1)
	r.log.Info("router live", "elements", len(r.elements))
	return nil
}

// stableConfigureOrder returns element indices sorted by ConfigurePhase,
// breaking ties by original insertion order.
func (r *Router) stableConfigureOrder() []int {
	order := make([]int, len(r.elements))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return r.elements[order[i]].ConfigurePhase() < r.elements[order[j]].ConfigurePhase()
	})
	return order
}

// runConfigurePass calls Configure on every element in configure order,
// marking each element's cleanup stage and never aborting early, so every
// configuration problem in a batch is reported together. Returns true if
// any element failed.
func (r *Router) runConfigurePass(sink ErrorSink) bool {
	anyFailed := false
	for _, idx := range r.configureOrder {
		e := r.elements[idx]
		ctx := newContextErrorSink(sink, "While configuring "+r.names[idx]+":")
		r.log.Debug("element configure start", "element", r.names[idx])
		if err := e.Configure(r.configArgs[idx], ctx); err != nil {
			ctx.Error("%s", err)
			r.cleanupStage[idx] = CleanupConfigureFailed
			anyFailed = true
		} else {
			r.cleanupStage[idx] = CleanupConfigured
		}
		r.log.Debug("element configure done", "element", r.names[idx])
	}
	return anyFailed
}

// runInitializePass calls Initialize on every element in configure order,
// halting at the first failure (subsequent elements stay CONFIGURED, never
// reaching Initialize).
func (r *Router) runInitializePass(sink ErrorSink) bool {
	for _, idx := range r.configureOrder {
		e := r.elements[idx]
		ctx := newContextErrorSink(sink, "While initializing "+r.names[idx]+":")
		r.log.Debug("element initialize start", "element", r.names[idx])
		if err := e.Initialize(ctx); err != nil {
			ctx.Error("%s", err)
			r.cleanupStage[idx] = CleanupInitializeFailed
			r.log.Debug("element initialize done", "element", r.names[idx], "ok", false)
			return false
		}
		r.cleanupStage[idx] = CleanupInitialized
		r.log.Debug("element initialize done", "element", r.names[idx], "ok", true)
	}
	return true
}

// rollback unwinds a failed Initialize: transitions to DEAD, calls Cleanup
// in reverse configure order with each element's actual attained stage,
// drops specific (element-scoped) handlers while keeping globals, and
// zeroes the runcount. Grounded on the failure path of Router::initialize.
func (r *Router) rollback(sink ErrorSink) {
	sink.Error("%s", ErrRouterNotInitialized)

	if r.master != nil {
		r.master.KillRouter(r)
	}

	r.mu.Lock()
	r.state = StateDead
	order := r.configureOrder
	r.mu.Unlock()

	for i := len(order) - 1; i >= 0; i-- {
		idx := order[i]
		r.elements[idx].Cleanup(r.cleanupStage[idx])
	}

	r.mu.Lock()
	for _, idx := range order {
		r.handlers.unbindAll(idx)
	}
	r.mu.Unlock()

	r.SetRuncount(0)
	r.log.Info("router dead")
}
