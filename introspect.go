// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"strconv"
	"strings"
)

// Version is the build version string reported by the "version"
// introspection handler. Overridable by embedders that stamp a real build
// version in.
var Version = "dev"

// installDefaultHandlers registers the router's global introspection
// handlers, mirroring the class-static handler table
// Router::router_read_handler/router_write_handler installs in router.cc.
func (r *Router) installDefaultHandlers() {
	mustAddRead(r, "version", func(Element, string, any, ErrorSink) (string, error) {
		return Version, nil
	})
	mustAddRead(r, "config", func(Element, string, any, ErrorSink) (string, error) {
		return r.originalConfig(), nil
	})
	mustAddRead(r, "flatconfig", func(Element, string, any, ErrorSink) (string, error) {
		return r.Unparse(), nil
	})
	mustAddRead(r, "list", func(Element, string, any, ErrorSink) (string, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(len(r.elements)))
		sb.WriteByte('\n')
		for _, name := range r.names {
			sb.WriteString(name)
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	})
	mustAddRead(r, "requirements", func(Element, string, any, ErrorSink) (string, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		return strings.Join(r.requirements, "\n"), nil
	})
	mustAddWrite(r, "stop", func(_ Element, value string, _ any, sink ErrorSink) error {
		delta := int32(1)
		if value != "" {
			n, err := strconv.Atoi(value)
			if err != nil {
				sink.Error("stop: %s", err)
				return err
			}
			delta = int32(n)
		}
		r.AdjustRuncount(-delta)
		return nil
	})
}

// originalConfig returns the same text as Router.Unparse: the core never
// sees the textual configuration language, so it retains no original
// configuration text to report.
func (r *Router) originalConfig() string {
	return r.Unparse()
}

func mustAddRead(r *Router, name string, fn ReadHandlerFunc) {
	if err := r.AddReadHandler(nil, name, fn, nil); err != nil {
		panic(err)
	}
}

func mustAddWrite(r *Router, name string, fn WriteHandlerFunc) {
	if err := r.AddWriteHandler(nil, name, fn, nil); err != nil {
		panic(err)
	}
}
