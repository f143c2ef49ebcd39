// SPDX-License-Identifier: GPL-3.0-or-later

package router

// resolveProcessing assigns a definite polarity to every port, propagating
// across connections and across each element's internal port_flow until a
// fixed point is reached. Grounded on Router::check_push_and_pull.
//
// It returns the resolved per-global-port-id polarity vectors and whether
// resolution succeeded (no unresolved conflicts).
func (r *Router) resolveProcessing(counts [][2]int, sink ErrorSink) (inputPol, outputPol []Polarity, ok bool) {
	inputPol = make([]Polarity, r.pidx.numGPorts(Input))
	outputPol = make([]Polarity, r.pidx.numGPorts(Output))

	// 1. Gather each element's declared per-port polarity.
	for e, elem := range r.elements {
		ic, oc := counts[e][Input], counts[e][Output]
		ins := make([]Polarity, ic)
		outs := make([]Polarity, oc)
		elem.ProcessingVector(ins, outs)
		is, ie := r.pidx.neighborRange(Input, e)
		os, oe := r.pidx.neighborRange(Output, e)
		copy(inputPol[is:ie], ins)
		copy(outputPol[os:oe], outs)
	}

	// 2. Build the working edge list: real connections plus synthetic
	// edges derived from each agnostic input's internal port_flow.
	working := r.conns.clone()
	firstAgnostic := working.len()
	for e, elem := range r.elements {
		is, _ := r.pidx.neighborRange(Input, e)
		for p := 0; p < counts[e][Input]; p++ {
			gin := is + p
			if inputPol[gin] != Agnostic {
				continue
			}
			bv := elem.PortFlow(Input, p)
			os, _ := r.pidx.neighborRange(Output, e)
			for j := 0; j < counts[e][Output]; j++ {
				if bv.Get(j) && outputPol[os+j] == Agnostic {
					working.from = append(working.from, hookup{elementIndex: e, port: j})
					working.to = append(working.to, hookup{elementIndex: e, port: p})
				}
			}
		}
	}

	// 3-4. Iteratively propagate until a pass makes no change.
	nerrorsBefore := sink.NErrors()
	for {
		changed := false
		for c := 0; c < working.len(); c++ {
			from := working.from[c]
			if from.elementIndex < 0 {
				continue // dead edge from a prior conflict
			}
			to := working.to[c]
			gf := r.pidx.globalPort(Output, from.elementIndex, from.port)
			gt := r.pidx.globalPort(Input, to.elementIndex, to.port)
			pf, pt := outputPol[gf], inputPol[gt]

			switch pt {
			case Agnostic:
				if pf != Agnostic {
					inputPol[gt] = pf
					changed = true
				}
			case Push, Pull:
				if pf == Agnostic {
					outputPol[gf] = pt
					changed = true
				} else if pf != pt {
					r.reportProcessingConflict(from, to, c >= firstAgnostic, pf, sink)
					working.from[c] = hookup{elementIndex: -1}
				}
			}
		}
		if !changed {
			break
		}
	}

	if sink.NErrors() != nerrorsBefore {
		return inputPol, outputPol, false
	}

	// 5. Publish the resolved vectors to every element.
	for e, elem := range r.elements {
		is, ie := r.pidx.neighborRange(Input, e)
		os, oe := r.pidx.neighborRange(Output, e)
		elem.InitializePorts(inputPol[is:ie], outputPol[os:oe])
	}
	return inputPol, outputPol, true
}

// reportProcessingConflict distinguishes direct (user-supplied) edges from
// aggregated (synthetic, agnostic-fan-out) edges, matching
// Router::processing_error's two message forms.
func (r *Router) reportProcessingConflict(from, to hookup, aggregated bool, fromPolarity Polarity, sink ErrorSink) {
	toPolarity := Push
	if fromPolarity == Push {
		toPolarity = Pull
	}
	if !aggregated {
		sink.Error("%s: %s %s output %d connected to %s %s input %d",
			ErrProcessingConflict,
			r.names[from.elementIndex], fromPolarity, from.port,
			r.names[to.elementIndex], toPolarity, to.port)
	} else {
		sink.Error("%s: agnostic %s in mixed context: %s input %d, %s output %d",
			ErrProcessingConflict,
			r.names[from.elementIndex],
			toPolarity, to.port, fromPolarity, from.port)
	}
}
