// The depth-first pass and its explicit work-stack walker.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/linkgraph/core"
)

// frame is one entry of the explicit work-stack: the vertex being explored
// and the position of the next neighbor to examine.
type frame struct {
	v             *core.Vertex
	next          int
	skippedParent bool // WithIgnoreParentEdge: parent arc already forgiven
}

// dfsWalker encapsulates the per-pass traversal context.
// A fresh walker is built for every call, so no state leaks between passes.
type dfsWalker struct {
	opts  DFSOptions
	res   *DFSResult
	clock int
	stack []frame
}

// DFS runs one full depth-first pass over g.
//
// Every vertex is reset to White first. Roots are tried in Graph.Vertices()
// order; already-visited vertices are skipped. Each discovery and each finish
// advances the clock by one, so after a complete pass every vertex is Black with
// Discovery < Finish, Order holds every vertex once by increasing Finish, and
// discovery/finish intervals are nested or disjoint.
//
// On hook error or cancellation the partial result is returned with the error.
func DFS(g *core.Graph, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Fresh coloring for this pass
	g.ResetTraversal()
	vertices := g.Vertices()
	n := len(vertices)
	w := &dfsWalker{
		opts: dopts,
		res: &DFSResult{
			Order:      make([]string, 0, n),
			Discovered: make([]string, 0, n),
			Discovery:  make(map[string]int, n),
			Finish:     make(map[string]int, n),
			Parent:     make(map[string]string, n),
		},
		stack: make([]frame, 0, n),
	}

	// 4. Forest traversal
	for _, root := range vertices {
		if root.Color != core.White {
			continue
		}
		if err := w.explore(root); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// explore runs the stack loop from one White root until the root is Black.
// Behavior matches the recursive formulation step for step.
func (w *dfsWalker) explore(root *core.Vertex) error {
	if err := w.discover(root); err != nil {
		return err
	}

	var top *frame
	var nb *core.Vertex
	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top = &w.stack[len(w.stack)-1]

		// all neighbors examined: finish and pop
		if top.next >= len(top.v.Neighbors) {
			if err := w.finish(top.v); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		nb = top.v.Neighbors[top.next]
		top.next++

		switch nb.Color {
		case core.White:
			nb.Parent = top.v.Index
			w.res.Parent[nb.Name] = top.v.Name
			// discover pushes a new frame; top is stale afterwards
			if err := w.discover(nb); err != nil {
				return err
			}
		case core.Gray:
			if w.opts.IgnoreParentEdge && !top.skippedParent && nb.Index == top.v.Parent {
				top.skippedParent = true
				continue
			}
			// back-edge to a vertex still on the stack
			w.res.HasCycle = true
		case core.Black:
			// cross or forward edge: no action
		}
	}

	return nil
}

// discover turns v Gray, stamps its discovery time, calls OnVisit and pushes a frame.
func (w *dfsWalker) discover(v *core.Vertex) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.clock++
	v.Discovery = w.clock
	v.Color = core.Gray
	w.res.Discovery[v.Name] = v.Discovery
	w.res.Discovered = append(w.res.Discovered, v.Name)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v.Name); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", v.Name, err)
		}
	}

	w.stack = append(w.stack, frame{v: v})

	return nil
}

// finish turns v Black, stamps its finish time, calls OnExit and records it in Order.
func (w *dfsWalker) finish(v *core.Vertex) error {
	w.clock++
	v.Finish = w.clock
	v.Color = core.Black
	w.res.Finish[v.Name] = v.Finish

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v.Name); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", v.Name, err)
		}
	}

	w.res.Order = append(w.res.Order, v.Name)

	return nil
}
