// Package dfs implements the depth-first pass used by the network view:
// every vertex is visited once, discovery/finish times are stamped with a
// shared clock, and back-edges to Gray vertices raise the cycle flag.
//
// What:
//
//   - DFS(g, opts...): full-forest traversal. Roots are tried in
//     core.Graph.Vertices() order (the input key order); a root that is no
//     longer White was reached from an earlier root and is skipped.
//   - Three colors on core.Vertex: White (undiscovered), Gray (on the work
//     stack), Black (finished). Color only moves forward within a pass.
//   - DFSResult.Order is the finish order; Discovered is the discovery order,
//     which is also the order OnVisit fires in.
//
// Cycle semantics:
//
//	By default every Gray neighbor sets HasCycle. Neighbor lists are
//	symmetric for an undirected network, so the arc from a child back to its
//	parent is itself a Gray neighbor: any graph with one edge between two
//	distinct people reports HasCycle == true. WithIgnoreParentEdge forgives
//	the first parent arc of each vertex and so reports true undirected cycles
//	(self-loops and parallel edges still count).
//
// Work-stack:
//
//	Exploration keeps (vertex, next-neighbor position) frames on an explicit
//	slice instead of the call stack. Discovery/finish order and cycle
//	detection are identical to the recursive formulation:
//
//	  visit(u): clock++; u.d = clock; u = Gray
//	            for v in u.neighbors:
//	                White → v.parent = u; visit(v)
//	                Gray  → cycle
//	            clock++; u.f = clock; u = Black; order += u
//
// Complexity:
//
//   - Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
