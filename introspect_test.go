// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The default "version", "list", and "requirements" global handlers are
// installed by NewRouter and remain callable before Initialize.
func TestDefaultHandlersBeforeInitialize(t *testing.T) {
	r := NewRouter(nil)
	r.AddElement(pushSource("A"), "A", nil, "")
	r.AddRequirement("libcrypto")

	sink := NewCollectingErrorSink()

	version, err := r.CallRead(nil, "version", "", sink)
	require.NoError(t, err)
	assert.Equal(t, Version, version)

	list, err := r.CallRead(nil, "list", "", sink)
	require.NoError(t, err)
	assert.Equal(t, "1\nA\n", list)

	reqs, err := r.CallRead(nil, "requirements", "", sink)
	require.NoError(t, err)
	assert.Equal(t, "libcrypto", reqs)
}

// The "stop" write handler adjusts the runcount downward by the given
// delta, defaulting to 1 when no value is supplied.
func TestStopHandlerAdjustsRuncount(t *testing.T) {
	r := NewRouter(nil)
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	sink := NewCollectingErrorSink()
	require.NoError(t, r.CallWrite(nil, "stop", "", sink))
	assert.EqualValues(t, 0, r.Runcount())
	assert.True(t, r.Stopped())
}

// An explicit numeric value to "stop" is used as the runcount delta.
func TestStopHandlerExplicitDelta(t *testing.T) {
	r := NewRouter(nil)
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))
	r.SetRuncount(5)

	sink := NewCollectingErrorSink()
	require.NoError(t, r.CallWrite(nil, "stop", "3", sink))
	assert.EqualValues(t, 2, r.Runcount())
}

// "flatconfig" reports the same text Unparse produces.
func TestFlatconfigMatchesUnparse(t *testing.T) {
	r := NewRouter(nil)
	r.AddElement(pushSource("A"), "A", nil, "")

	sink := NewCollectingErrorSink()
	flat, err := r.CallRead(nil, "flatconfig", "", sink)
	require.NoError(t, err)
	assert.Equal(t, r.Unparse(), flat)
}
