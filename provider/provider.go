// Package provider loads the adjacency mapping that seeds a core.Graph.
//
// A mapping can come from the graph HTTP endpoint, a local JSON or YAML
// file, or memory. Every decoder keeps the key order of its input, since
// that order fixes the depth-first root order downstream.
package provider

import (
	"context"
	"errors"

	"github.com/katalvlaran/linkgraph/core"
)

const (
	// DefaultURL is the graph endpoint queried when no source is configured.
	DefaultURL = "http://localhost:3338/graph"

	// DefaultField is the response field that holds the mapping.
	DefaultField = "adjacency_map"
)

// Sentinel errors for fetching and decoding.
var (
	// ErrMalformed indicates the document is not a name → list-of-names mapping.
	ErrMalformed = errors.New("provider: malformed adjacency mapping")

	// ErrFieldNotFound indicates the configured field is absent from the document.
	ErrFieldNotFound = errors.New("provider: field not found")

	// ErrStatus indicates the endpoint answered with a non-200 status.
	ErrStatus = errors.New("provider: unexpected status")
)

// Provider fetches an ordered adjacency mapping.
type Provider interface {
	Fetch(ctx context.Context) (*core.AdjacencyMap, error)
}

// Static serves a mapping held in memory.
type Static struct {
	Map *core.AdjacencyMap
}

// Fetch returns the wrapped mapping, or an empty one if it is nil.
func (s Static) Fetch(ctx context.Context) (*core.AdjacencyMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Map == nil {
		return core.NewAdjacencyMap(0), nil
	}

	return s.Map, nil
}
