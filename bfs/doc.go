// Package bfs provides level-synchronous breadth-first search over the
// adjacency index of a core.Graph, returning hop-distance levels, parent
// links, and admission order.
//
// What
//
//   - Expands one whole frontier per level, starting from the source at level 0.
//   - Returns a BFSResult containing:
//   - Order: admission sequence, source first
//   - Depth: the level map, name → hops from the source
//   - Parent: name → the frontier member that admitted it
//   - Calls OnVisit on every admission; a hook error aborts the search.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Degree-of-connection reports ("1st", "2nd", "3rd" connections) are
//     exactly the BFS levels 1, 2 and 3 of a person.
//   - Works on raw names, so it sees every edge connect has added and
//     every duplicate or dangling entry the input carried.
//
// Determinism
//
//	Frontier members are expanded in admission order and each neighbor
//	list is read in entry order, so the result is fully reproducible for a
//	given adjacency index.
//
// Dangling names
//
//	A neighbor name without an entry of its own is admitted at its level
//	and contributes no neighbors. A source without an entry is rejected
//	with ErrStartVertexNotFound.
//
// Complexity (V = |names reached|, E = |entries read|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (frontier, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, "alice", bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a hook error
//	}
//	second := res.AtDepth(2)
package bfs
