// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A freshly allocated signal starts active, and SetActive/SetInactive toggle
// it independently of any other allocated bit.
func TestNotifierSignalLifecycle(t *testing.T) {
	r := NewRouter(nil)

	sig1, err := r.NewNotifierSignal()
	require.NoError(t, err)
	assert.True(t, sig1.Active())

	sig2, err := r.NewNotifierSignal()
	require.NoError(t, err)
	assert.True(t, sig2.Active())

	sig1.SetInactive()
	assert.False(t, sig1.Active())
	assert.True(t, sig2.Active(), "clearing sig1 must not affect sig2")

	sig1.SetActive()
	assert.True(t, sig1.Active())
}

// Bits spanning adjacent words are independent.
func TestNotifierSignalCrossesWordBoundary(t *testing.T) {
	r := NewRouter(nil)

	var sigs []NotifierSignal
	for i := 0; i < notifierWordBits+2; i++ {
		sig, err := r.NewNotifierSignal()
		require.NoError(t, err)
		sigs = append(sigs, sig)
	}

	last := sigs[len(sigs)-1]
	last.SetInactive()
	assert.False(t, last.Active())
	for _, sig := range sigs[:len(sigs)-1] {
		assert.True(t, sig.Active())
	}
}

// Exhausting the fixed capacity reports ErrNotifierCapacityExhausted.
func TestNotifierCapacityExhausted(t *testing.T) {
	r := NewRouter(nil)

	for i := 0; i < notifierCapacityBits; i++ {
		_, err := r.NewNotifierSignal()
		require.NoError(t, err)
	}

	_, err := r.NewNotifierSignal()
	assert.ErrorIs(t, err, ErrNotifierCapacityExhausted)
}
