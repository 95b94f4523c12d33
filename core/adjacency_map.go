// SPDX-License-Identifier: MIT
//
// File: adjacency_map.go
// Role: Ordered name → neighbor-names mapping consumed by NewGraph.
// Determinism:
//   - Names() returns keys in first-insertion order; this order becomes the
//     depth-first root order of the Graph built from the map.

package core

// AdjacencyMap is an ordered mapping from person name to neighbor names.
//
// Go maps do not keep insertion order, but root order matters to depth-first
// traversal, so the key order is tracked explicitly. Every entry owns its own
// slice: Set copies the given names and Neighbors returns a copy.
//
// The zero value is ready to use. AdjacencyMap is not safe for concurrent writes.
type AdjacencyMap struct {
	names []string
	links map[string][]string
}

// NewAdjacencyMap returns an empty map with room for n entries.
func NewAdjacencyMap(n int) *AdjacencyMap {
	if n < 0 {
		n = 0
	}

	return &AdjacencyMap{
		names: make([]string, 0, n),
		links: make(map[string][]string, n),
	}
}

// Set stores a copy of neighbors under name.
// Re-setting an existing name replaces its list and keeps its original position.
func (m *AdjacencyMap) Set(name string, neighbors ...string) {
	if m.links == nil {
		m.links = make(map[string][]string)
	}
	if _, exists := m.links[name]; !exists {
		m.names = append(m.names, name)
	}
	// always a fresh, non-nil slice so entries never share storage
	entry := make([]string, len(neighbors))
	copy(entry, neighbors)
	m.links[name] = entry
}

// Has reports whether name is a key.
func (m *AdjacencyMap) Has(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.links[name]

	return ok
}

// Neighbors returns a copy of the entry for name and whether it exists.
func (m *AdjacencyMap) Neighbors(name string) ([]string, bool) {
	if m == nil {
		return nil, false
	}
	entry, ok := m.links[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(entry))
	copy(out, entry)

	return out, true
}

// Names returns the keys in first-insertion order.
func (m *AdjacencyMap) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Len returns the number of keys.
func (m *AdjacencyMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.names)
}

// AdjacencyMapFrom builds an AdjacencyMap from a plain map using the given key order.
// Keys listed in order but absent from links get an empty entry; keys of links
// missing from order are dropped.
func AdjacencyMapFrom(order []string, links map[string][]string) *AdjacencyMap {
	m := NewAdjacencyMap(len(order))
	for _, name := range order {
		m.Set(name, links[name]...)
	}

	return m
}
