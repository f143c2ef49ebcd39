// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A connection naming a nonexistent element index is dropped and reported,
// without aborting validation of the rest of the graph.
func TestInitializeDropsBadElementIndex(t *testing.T) {
	r := NewRouter(nil)
	a := pushSource("A")
	r.AddElement(a, "A", nil, "")
	require.NoError(t, r.AddConnection(0, 0, 7, 0))

	sink := NewCollectingErrorSink()
	err := r.Initialize(sink)

	assert.ErrorIs(t, err, ErrRouterNotInitialized)
	assert.Equal(t, 0, r.conns.len())
}

// A connection whose port exceeds the element's declared port count is
// dropped and reported.
func TestInitializeDropsOutOfRangePort(t *testing.T) {
	r := NewRouter(nil)
	a := pushSource("A")
	b := pushSink("B")
	ai, _ := r.AddElement(a, "A", nil, "")
	bi, _ := r.AddElement(b, "B", nil, "")
	require.NoError(t, r.AddConnection(ai, 5, bi, 0))

	sink := NewCollectingErrorSink()
	err := r.Initialize(sink)
	assert.ErrorIs(t, err, ErrRouterNotInitialized)
}

// An unused input or output port is reported as a completeness failure.
func TestInitializeReportsUnusedPort(t *testing.T) {
	r := NewRouter(nil)
	a := pushSource("A")
	r.AddElement(a, "A", nil, "")

	sink := NewCollectingErrorSink()
	err := r.Initialize(sink)
	assert.ErrorIs(t, err, ErrRouterNotInitialized)
	assert.Greater(t, sink.NErrors(), 0)
}

// A pull input port fed by two connections reports ErrPullInputReused.
func TestInitializeReportsPullInputReused(t *testing.T) {
	r := NewRouter(nil)
	s1 := pushSource("S1")
	s2 := pushSource("S2")
	d := newFakeElement("D", 1, 0)
	d.inputPolarity = []Polarity{Pull}
	d.flow = func(dir Direction, port int) Bitvector { return NewBitvector(0) }

	s1.outputPolarity = []Polarity{Pull}
	s2.outputPolarity = []Polarity{Pull}

	s1i, _ := r.AddElement(s1, "S1", nil, "")
	s2i, _ := r.AddElement(s2, "S2", nil, "")
	di, _ := r.AddElement(d, "D", nil, "")

	require.NoError(t, r.AddConnection(s1i, 0, di, 0))
	require.NoError(t, r.AddConnection(s2i, 0, di, 0))

	sink := NewCollectingErrorSink()
	err := r.Initialize(sink)
	assert.ErrorIs(t, err, ErrRouterNotInitialized)

	found := false
	for _, msg := range sink.Messages {
		if containsSubstring(msg, ErrPullInputReused.Error()) {
			found = true
		}
	}
	assert.True(t, found, "messages: %v", sink.Messages)
}
