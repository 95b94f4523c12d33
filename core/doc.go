// Package core defines the social-network graph model shared by the traversal
// packages: the ordered input mapping (AdjacencyMap), the Vertex with its
// per-pass traversal state, and the Graph that keeps two views of one edge set.
//
// Two views, one graph:
//
//   - Vertex view: Graph.Vertices() returns vertices in input order; each
//     Vertex holds an ordered Neighbors slice of *Vertex. Depth-first search
//     (package dfs) walks this view.
//   - Index view: name → ordered neighbor names, copied verbatim from the
//     input. Breadth-first search (package bfs) walks this view.
//
// Construction (NewGraph) never fails:
//
//  1. one Vertex per key, in key order;
//  2. neighbor names resolved to *Vertex in entry order; names that are not
//     keys are dropped from the vertex view but kept in the index view;
//  3. the index view is an independent copy of every entry.
//
// Mutation:
//
//	Connect(a, b) appends b to a and a to b in both views, or returns
//	ErrEndpointMissing and touches nothing. Duplicate edges and self-loops
//	are accepted as-is.
//
// Quick ASCII example:
//
//	{"A": ["B"], "B": ["A", "C"], "C": ["B"]}
//
//	    A───B───C
//
// Concurrency:
//
//	Graph structure is guarded by a sync.RWMutex, so Connect is atomic for
//	callers. Traversal state stored on Vertex (Color, Discovery, Finish,
//	Parent) is written by dfs without locking; run one pass at a time.
//
// Errors:
//
//	ErrVertexNotFound   - a query referenced an unknown name.
//	ErrEndpointMissing  - Connect was given a name that is not a vertex.
package core
