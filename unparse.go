// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"fmt"
	"strings"
)

// Unparse renders the router's graph in canonical form: a require(...)
// clause (if any requirements were added), then one "NAME :: CLASS(CONFIG);"
// declaration per element, then connection chains that maximally extend
// through each intermediate element, breaking cycles by re-seeding any
// connection left over once every maximal chain has been rendered.
// Grounded on Router::unparse_requirements/_declarations/_connections.
func (r *Router) Unparse() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder

	if len(r.requirements) > 0 {
		sb.WriteString("require(" + strings.Join(r.requirements, ", ") + ");\n\n")
	}

	if len(r.names) > 0 {
		for i, name := range r.names {
			sb.WriteString(fmt.Sprintf("%s :: %s(%s);\n", name, r.elements[i].ClassName(), r.configs[i]))
		}
		sb.WriteString("\n")
	}

	for _, line := range r.unparseChains() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// unparseChains groups the connection table into maximal chains: a
// connection continues a chain when its from-port is 0 and its
// from-element is the to-element, at port 0, of some other (not yet
// rendered) connection — a chain only extends through port 0 on both
// sides of the linking element. Leftover connections (broken cycles) start
// their own chains. Grounded on Router::unparse_connections, which only
// links next[c] when _hookup_to[c].port == 0.
func (r *Router) unparseChains() []string {
	n := r.conns.len()
	if n == 0 {
		return nil
	}

	// byFromZero maps an element index to the connection index leaving
	// its port 0, used to find the next link in a chain.
	byFromZero := make(map[int]int, n)
	isTarget := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		from := r.conns.from[i]
		if from.port == 0 {
			if _, ok := byFromZero[from.elementIndex]; !ok {
				byFromZero[from.elementIndex] = i
			}
		}
		if r.conns.to[i].port == 0 {
			isTarget[r.conns.to[i].elementIndex] = true
		}
	}

	used := make([]bool, n)
	var lines []string

	render := func(start int) string {
		var sb strings.Builder
		cur := start
		from := r.conns.from[cur]
		sb.WriteString(fmt.Sprintf("%s [%d]", r.names[from.elementIndex], from.port))
		for {
			used[cur] = true
			to := r.conns.to[cur]
			sb.WriteString(fmt.Sprintf(" -> [%d] %s", to.port, r.names[to.elementIndex]))
			if to.port != 0 {
				break
			}
			next, ok := byFromZero[to.elementIndex]
			if !ok || used[next] {
				break
			}
			cur = next
		}
		sb.WriteString(";")
		return sb.String()
	}

	// First pass: true chain starts, elements never the target of a
	// port-0-continued connection.
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		from := r.conns.from[i]
		if from.port == 0 && isTarget[from.elementIndex] {
			continue
		}
		lines = append(lines, render(i))
	}

	// Second pass: whatever remains is part of a cycle; break it
	// arbitrarily by re-seeding at the lowest-index unused connection.
	for i := 0; i < n; i++ {
		if !used[i] {
			lines = append(lines, render(i))
		}
	}

	return lines
}
