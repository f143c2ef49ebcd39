// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// NewConfig fills in every field with a usable default.
func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.ErrSink)
	assert.NotNil(t, cfg.TimeNow)
	assert.NotNil(t, cfg.Master)
	assert.WithinDuration(t, cfg.TimeNow(), cfg.TimeNow(), time.Second)
}

// NewRouter substitutes NewConfig's defaults for a nil Config.
func TestNewRouterNilConfig(t *testing.T) {
	r := NewRouter(nil)
	assert.NotNil(t, r.cfg)
	assert.NotNil(t, r.cfg.Logger)
}
