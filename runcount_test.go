// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeThread records whether Wake was called.
type fakeThread struct {
	woken bool
}

func (t *fakeThread) Wake() { t.woken = true }

type fakeMaster struct {
	threads []SchedulerThread
}

func (m *fakeMaster) PrepareRouter(*Router) error  { return nil }
func (m *fakeMaster) RunRouter(*Router, bool) error { return nil }
func (m *fakeMaster) KillRouter(*Router)            {}
func (m *fakeMaster) Threads() []SchedulerThread    { return m.threads }

// AdjustRuncount saturates on both ends without overflow.
func TestAdjustRuncountSaturates(t *testing.T) {
	r := NewRouter(nil)
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	r.SetRuncount(math.MaxInt32 - 1)
	r.AdjustRuncount(10)
	assert.EqualValues(t, math.MaxInt32, r.Runcount())

	r.SetRuncount(StopRuncount + 1)
	r.AdjustRuncount(-10)
	assert.EqualValues(t, StopRuncount, r.Runcount())
}

// Crossing to a non-positive runcount sets the stopper flag and wakes every
// registered scheduler thread.
func TestAdjustRuncountWakesThreads(t *testing.T) {
	th := &fakeThread{}
	cfg := NewConfig()
	cfg.Master = &fakeMaster{threads: []SchedulerThread{th}}
	r := NewRouter(cfg)
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))

	assert.False(t, r.Stopped())
	r.SetRuncount(5)
	r.AdjustRuncount(-5)

	assert.EqualValues(t, 0, r.Runcount())
	assert.True(t, r.Stopped())
	assert.True(t, th.woken)
}

// SetRuncount above zero does not trip the stopper.
func TestSetRuncountPositive(t *testing.T) {
	r := NewRouter(nil)
	require.NoError(t, r.Initialize(NewCollectingErrorSink()))
	r.SetRuncount(3)
	assert.False(t, r.Stopped())
	assert.EqualValues(t, 3, r.Runcount())
}
