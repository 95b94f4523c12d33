// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction and read-only queries over both views.
// Determinism:
//   - Vertices() and Names() follow input key order.
//   - NeighborNames() follows entry order, duplicates included.
// Concurrency:
//   - All queries take mu.RLock and return copies.

package core

// NewGraph builds a Graph from an ordered adjacency mapping.
//
// Implementation:
//   - Stage 1: allocate one Vertex per key, in key order, with reset traversal state.
//   - Stage 2: resolve each entry's names to vertices in entry order; unknown
//     names are skipped in the vertex view only.
//   - Stage 3: copy every entry into the adjacency index.
//
// A nil map yields an empty Graph. Construction never fails.
//
// Complexity: O(V + E).
func NewGraph(m *AdjacencyMap) *Graph {
	names := m.Names()
	g := &Graph{
		vertices:  make([]*Vertex, 0, len(names)),
		byName:    make(map[string]*Vertex, len(names)),
		adjacency: make(map[string][]string, len(names)),
		order:     make([]string, 0, len(names)),
	}

	// Stage 1: vertices
	for i, name := range names {
		v := &Vertex{Name: name, Index: i}
		v.reset()
		g.vertices = append(g.vertices, v)
		g.byName[name] = v
	}

	// Stage 2: neighbor references
	for _, v := range g.vertices {
		entry, _ := m.Neighbors(v.Name)
		v.Neighbors = make([]*Vertex, 0, len(entry))
		for _, nbr := range entry {
			if u, ok := g.byName[nbr]; ok {
				v.Neighbors = append(v.Neighbors, u)
			}
		}
	}

	// Stage 3: index view (Neighbors already returns an owned copy)
	for _, name := range names {
		entry, _ := m.Neighbors(name)
		g.adjacency[name] = entry
		g.order = append(g.order, name)
	}

	return g
}

// Vertices returns the vertices in input order.
// The slice is a copy; the *Vertex values are shared with the Graph.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Vertex returns the vertex called name.
func (g *Graph) Vertex(name string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.byName[name]

	return v, ok
}

// HasVertex reports whether name is in the vertex view.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.Vertex(name)

	return ok
}

// HasPerson reports whether name has an entry in the adjacency index.
// This is the membership test used by breadth-first search.
func (g *Graph) HasPerson(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[name]

	return ok
}

// NeighborNames returns a copy of the adjacency-index entry for name.
// Returns ErrVertexNotFound if name has no entry.
func (g *Graph) NeighborNames(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entry, ok := g.adjacency[name]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, len(entry))
	copy(out, entry)

	return out, nil
}

// AdjacencyList returns a deep copy of the adjacency index.
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for name, entry := range g.adjacency {
		cp := make([]string, len(entry))
		copy(cp, entry)
		out[name] = cp
	}

	return out
}

// Names returns the adjacency-index keys in insertion order.
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// ParentOf returns the depth-first parent of v, or nil for roots and
// undiscovered vertices.
func (g *Graph) ParentOf(v *Vertex) *Vertex {
	if v == nil || v.Parent == NoParent {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v.Parent < 0 || v.Parent >= len(g.vertices) {
		return nil
	}

	return g.vertices[v.Parent]
}

// ResetTraversal puts every vertex back to White with cleared times and parent.
// The dfs package calls it at the start of each pass.
func (g *Graph) ResetTraversal() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		v.reset()
	}
}
