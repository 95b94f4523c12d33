package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linkgraph/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	frontier []string
	res      *BFSResult
}

// BFS runs level-synchronous breadth-first search on g's adjacency index
// starting from source, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// The vertex view is not consulted: a name admitted from an entry that has no
// entry of its own is kept at its level and simply has no neighbors.
func BFS(g *core.Graph, source string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source
	if !g.HasPerson(source) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, source)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed level 0 with the source (no parent)
	if err := w.admit(source, 0, "", false); err != nil {
		return w.res, err
	}
	w.frontier = []string{source}

	// Main loop
	return w.res, w.loop()
}

// admit records name at level d, calls OnVisit, and records its parent.
func (w *walker) admit(name string, d int, parent string, hasParent bool) error {
	w.res.Depth[name] = d
	if hasParent {
		w.res.Parent[name] = parent
	}
	w.res.Order = append(w.res.Order, name)
	if err := w.opts.OnVisit(name, d); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", name, err)
	}

	return nil
}

// loop expands the frontier one level at a time until it is empty,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for level := 1; len(w.frontier) > 0; level++ {
		if w.opts.MaxDepth > 0 && level > w.opts.MaxDepth {
			return nil
		}

		next := make([]string, 0, len(w.frontier))
		for _, u := range w.frontier {
			// cancellation check (once per frontier member)
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}

			// a name without an entry has no neighbors
			neighbors, err := w.graph.NeighborNames(u)
			if err != nil {
				continue
			}
			for _, v := range neighbors {
				// first time seen? duplicates stop here
				if _, seen := w.res.Depth[v]; seen {
					continue
				}
				if err = w.admit(v, level, u, true); err != nil {
					return err
				}
				next = append(next, v)
			}
		}
		w.frontier = next
	}

	return nil
}
