// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Color, Graph declarations, sentinel errors and traversal-state constants.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates a query referenced a name with no vertex or index entry.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEndpointMissing indicates Connect was called with a name that is not a vertex.
	// No mutation is applied when it is returned.
	ErrEndpointMissing = errors.New("core: connect endpoint not found")
)

// Color is the depth-first visitation state of a Vertex.
type Color int

const (
	// White: the vertex has not been discovered in the current pass.
	White Color = iota
	// Gray: the vertex is discovered and still on the work stack.
	Gray
	// Black: the vertex and everything reachable below it is finished.
	Black
)

// String returns the upper-case color name.
func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Gray:
		return "GRAY"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

const (
	// Unfinished is the Finish value of a vertex that has not turned Black.
	// It stands for +∞ so that Discovery < Finish holds from discovery on.
	Unfinished = math.MaxInt

	// NoParent is the Parent value of a depth-first root or an undiscovered vertex.
	NoParent = -1
)

// Vertex is a person in the network together with its depth-first traversal state.
//
// Name and Index never change after construction. Color, Discovery, Finish and
// Parent are rewritten on every depth-first pass. Parent is an index into
// Graph.Vertices(), never an owning reference.
type Vertex struct {
	// Name uniquely identifies this vertex within its Graph.
	Name string

	// Index is the position of this vertex in Graph.Vertices().
	Index int

	// Color is the visitation state for the current pass.
	Color Color

	// Discovery is the clock value when the vertex turned Gray.
	Discovery int

	// Finish is the clock value when the vertex turned Black, or Unfinished.
	Finish int

	// Parent is the Index of the discovering vertex, or NoParent.
	Parent int

	// Neighbors is the ordered adjacency used by depth-first traversal.
	// Entries are shared references; duplicates are allowed.
	Neighbors []*Vertex
}

// reset puts the traversal state back to its pre-pass values.
func (v *Vertex) reset() {
	v.Color = White
	v.Discovery = 0
	v.Finish = Unfinished
	v.Parent = NoParent
}

// Graph aggregates the vertex view and the adjacency index of one network.
//
// mu guards vertices, byName and adjacency. Traversal fields on each Vertex
// are not guarded by mu.
type Graph struct {
	mu sync.RWMutex

	vertices []*Vertex         // insertion order = input key order
	byName   map[string]*Vertex // name → vertex

	adjacency map[string][]string // name → neighbor names (index view)
	order     []string            // adjacency keys in insertion order
}
