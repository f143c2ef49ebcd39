// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "strings"

// Find resolves a slash-delimited compound element name, repeatedly
// searching context+"/"+name and then stripping context's last path
// component, until a match is found or context is exhausted. Two matches
// at the same scope is [ErrAmbiguousName]. Grounded on Router::find.
func (r *Router) Find(name, context string) (Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scope := context
	for {
		full := name
		if scope != "" {
			full = scope + "/" + name
		}
		matches := r.findAtScope(full)
		switch len(matches) {
		case 1:
			return r.elements[matches[0]], nil
		case 0:
			// fall through to widen scope
		default:
			return nil, ErrAmbiguousName
		}
		if scope == "" {
			return nil, ErrNameNotFound
		}
		scope = stripLastComponent(scope)
	}
}

func (r *Router) findAtScope(full string) []int {
	var out []int
	for i, n := range r.names {
		if n == full {
			out = append(out, i)
		}
	}
	return out
}

func stripLastComponent(scope string) string {
	idx := strings.LastIndex(scope, "/")
	if idx < 0 {
		return ""
	}
	return scope[:idx]
}
