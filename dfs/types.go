// Options, sentinel errors and the result type for DFS.

package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the pass between two steps.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex turns Gray (discovery order).
	// Returning an error aborts traversal with that error.
	OnVisit func(name string) error

	// OnExit, if non-nil, is invoked when a vertex turns Black,
	// before it is appended to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(name string) error

	// IgnoreParentEdge, if true, does not treat the first arc from a vertex
	// back to its tree parent as a cycle. Self-loops and parallel edges still
	// count. Default false: every Gray neighbor sets HasCycle, so any
	// undirected edge between two distinct vertices reports a cycle.
	IgnoreParentEdge bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No discovery/finish hooks
//   - Literal cycle semantics (IgnoreParentEdge = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnExit:           nil,
		IgnoreParentEdge: false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the discovery hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as the finish hook.
func WithOnExit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithIgnoreParentEdge returns an Option that switches cycle detection to
// undirected semantics: the tree edge back to the parent is not a back-edge.
func WithIgnoreParentEdge() Option {
	return func(o *DFSOptions) {
		o.IgnoreParentEdge = true
	}
}

// DFSResult captures the outcome of one depth-first pass.
type DFSResult struct {
	// Order records vertices in the sequence they finished, i.e. by increasing Finish.
	Order []string

	// Discovered records vertices in the sequence they turned Gray.
	Discovered []string

	// Discovery maps each vertex name to its discovery time.
	Discovery map[string]int

	// Finish maps each vertex name to its finish time.
	Finish map[string]int

	// Parent maps each vertex name to the name of the vertex that discovered it.
	// Roots of the depth-first forest do not appear in this map.
	Parent map[string]string

	// HasCycle is set when a Gray neighbor was met during the pass.
	HasCycle bool
}

// Visited returns the number of vertices finished by the pass.
func (r *DFSResult) Visited() int {
	return len(r.Order)
}
