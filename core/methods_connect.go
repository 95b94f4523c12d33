// SPDX-License-Identifier: MIT
//
// File: methods_connect.go
// Role: the only structural mutation, an undirected edge added to both views.

package core

import "fmt"

// Connect adds an undirected edge between the existing vertices a and b.
//
// Implementation:
//   - Stage 1: under mu.Lock, look up both names in the vertex view.
//   - Stage 2: if either is missing return ErrEndpointMissing; nothing is touched.
//   - Stage 3: append b to a.Neighbors and a to b.Neighbors.
//   - Stage 4: append b to index[a] and a to index[b], creating entries if absent.
//
// Behavior highlights:
//   - All-or-nothing: both views change together or not at all.
//   - No deduplication: connecting the same pair twice records two parallel edges.
//   - Self-connection is accepted and records the loop twice in each view.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	va, okA := g.byName[a]
	vb, okB := g.byName[b]
	switch {
	case !okA && !okB:
		return fmt.Errorf("%w: %q, %q", ErrEndpointMissing, a, b)
	case !okA:
		return fmt.Errorf("%w: %q", ErrEndpointMissing, a)
	case !okB:
		return fmt.Errorf("%w: %q", ErrEndpointMissing, b)
	}

	// vertex view
	va.Neighbors = append(va.Neighbors, vb)
	vb.Neighbors = append(vb.Neighbors, va)

	// index view
	g.appendIndex(a, b)
	g.appendIndex(b, a)

	return nil
}

// appendIndex appends nbr to the entry of name, creating the entry if absent.
// Caller must hold mu.Lock.
func (g *Graph) appendIndex(name, nbr string) {
	if _, ok := g.adjacency[name]; !ok {
		g.order = append(g.order, name)
	}
	g.adjacency[name] = append(g.adjacency[name], nbr)
}
