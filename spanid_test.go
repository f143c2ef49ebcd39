// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewSpanID returns a distinct, parseable UUIDv7 on every call.
func TestNewSpanID(t *testing.T) {
	a := NewSpanID()
	b := NewSpanID()

	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
