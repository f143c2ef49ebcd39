// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DownstreamElements follows a straight chain to its end, and
// UpstreamElements follows it back to the start.
func TestDownstreamAndUpstreamElements(t *testing.T) {
	r := NewRouter(nil)
	s := pushSource("S")
	q := agnosticQueue("Q")
	d := pushSink("D")

	si, _ := r.AddElement(s, "S", nil, "")
	qi, _ := r.AddElement(q, "Q", nil, "")
	di, _ := r.AddElement(d, "D", nil, "")

	require.NoError(t, r.AddConnection(si, 0, qi, 0))
	require.NoError(t, r.AddConnection(qi, 0, di, 0))
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	down, err := r.DownstreamElements(s, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []Element{q, d}, down)

	// elementsFromBitvector walks global port ids in ascending order, so
	// the result is ordered by declaration order among reached elements,
	// not by traversal order: S was declared before Q.
	up, err := r.UpstreamElements(d, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []Element{s, q}, up)
}

// A fan-out from one source to two sinks is fully reached by
// DownstreamElements, each appearing exactly once.
func TestDownstreamElementsFanOut(t *testing.T) {
	r := NewRouter(nil)
	s := pushSource("S")
	d1 := pushSink("D1")
	d2 := pushSink("D2")
	si, _ := r.AddElement(s, "S", nil, "")
	d1i, _ := r.AddElement(d1, "D1", nil, "")
	d2i, _ := r.AddElement(d2, "D2", nil, "")

	// Wire through a 2-output fixture element in place of the real source
	// so the fan-out is structurally possible without a push-output reuse
	// violation: S's single push output drives a splitter of 1 input, 2
	// outputs.
	splitter := newFakeElement("splitter", 1, 2)
	splitter.inputPolarity = []Polarity{Push}
	splitter.outputPolarity = []Polarity{Push, Push}
	splitter.flow = func(dir Direction, port int) Bitvector {
		return AllBitvector(2)
	}
	spi, _ := r.AddElement(splitter, "splitter", nil, "")

	require.NoError(t, r.AddConnection(si, 0, spi, 0))
	require.NoError(t, r.AddConnection(spi, 0, d1i, 0))
	require.NoError(t, r.AddConnection(spi, 1, d2i, 0))
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	down, err := r.DownstreamElements(s, 0, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Element{splitter, d1, d2}, down)
}

// A stop filter halts the traversal at the matched element without
// expanding past it.
func TestDownstreamElementsStopFilter(t *testing.T) {
	r := NewRouter(nil)
	s := pushSource("S")
	q := agnosticQueue("Q")
	d := pushSink("D")

	si, _ := r.AddElement(s, "S", nil, "")
	qi, _ := r.AddElement(q, "Q", nil, "")
	di, _ := r.AddElement(d, "D", nil, "")

	require.NoError(t, r.AddConnection(si, 0, qi, 0))
	require.NoError(t, r.AddConnection(qi, 0, di, 0))
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	stop := ElementFilterFunc(func(e Element) bool { return e == q })
	down, err := r.DownstreamElements(s, 0, stop)
	require.NoError(t, err)
	assert.Equal(t, []Element{q}, down, "traversal must stop at Q without reaching D")
}

// DownstreamElements on an unknown element reports ErrBadElementIndex.
func TestDownstreamElementsUnknownElement(t *testing.T) {
	r := NewRouter(nil)
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	stray := pushSource("stray")
	_, err := r.DownstreamElements(stray, 0, nil)
	assert.ErrorIs(t, err, ErrBadElementIndex)
}
