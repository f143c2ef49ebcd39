// SPDX-License-Identifier: GPL-3.0-or-later

package router

// portIndex maps (element, direction, port) to a flat global port id and
// back, grounded on Router::_gports / Router::make_gports in router.cc.
//
// For each direction, e2g[e] is the global port id of element e's port 0,
// and e2g[e+1]-e2g[e] is element e's port count in that direction; g2e is
// the inverse mapping from global port id to element index.
type portIndex struct {
	e2g [2][]int
	g2e [2][]int
}

// buildPortIndex computes the port index from each element's declared
// (nInputs, nOutputs) pair.
func buildPortIndex(counts [][2]int) *portIndex {
	pi := &portIndex{}
	for dir := 0; dir < 2; dir++ {
		e2g := make([]int, len(counts)+1)
		for e, c := range counts {
			e2g[e+1] = e2g[e] + c[dir]
		}
		g2e := make([]int, e2g[len(counts)])
		for e := range counts {
			for g := e2g[e]; g < e2g[e+1]; g++ {
				g2e[g] = e
			}
		}
		pi.e2g[dir] = e2g
		pi.g2e[dir] = g2e
	}
	return pi
}

// numGPorts returns the total number of ports in direction dir across every
// element.
func (pi *portIndex) numGPorts(dir Direction) int {
	return len(pi.g2e[dir])
}

// globalPort returns the flat global port id of (e, port) in direction dir.
func (pi *portIndex) globalPort(dir Direction, e, port int) int {
	return pi.e2g[dir][e] + port
}

// elementOf returns the element index and local port index that global port
// id g (in direction dir) belongs to.
func (pi *portIndex) elementOf(dir Direction, g int) (elementIndex, port int) {
	e := pi.g2e[dir][g]
	return e, g - pi.e2g[dir][e]
}

// neighborRange returns the half-open range of global port ids belonging to
// element e in direction dir, enabling O(1) neighbor enumeration.
func (pi *portIndex) neighborRange(dir Direction, e int) (start, end int) {
	return pi.e2g[dir][e], pi.e2g[dir][e+1]
}

// hookupGPorts resolves both endpoints of every connection in the table to
// their global port ids: outputGPort for the from-side, inputGPort for the
// to-side. This is the flow matrix the resolver and transitive traversal
// use, grounded on Router::make_hookup_gports.
func (pi *portIndex) hookupGPorts(c *connectionTable) (outputGPort, inputGPort []int) {
	n := c.len()
	outputGPort = make([]int, n)
	inputGPort = make([]int, n)
	for i := 0; i < n; i++ {
		outputGPort[i] = pi.globalPort(Output, c.from[i].elementIndex, c.from[i].port)
		inputGPort[i] = pi.globalPort(Input, c.to[i].elementIndex, c.to[i].port)
	}
	return outputGPort, inputGPort
}
