// SPDX-License-Identifier: MIT
// Package: linkgraph/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical mapping.
//   - Never panics at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkgraph/core"
)

// Constructor applies a deterministic mutation to a draft network.
type Constructor func(d *draft, cfg builderConfig) error

// Build resolves bopts and applies every constructor in order, returning the
// resulting ordered mapping. The first constructor error is wrapped and
// returned; no partial mapping is returned.
func Build(bopts []BuilderOption, cons ...Constructor) (*core.AdjacencyMap, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return core.AdjacencyMapFrom(d.order, d.links), nil
}

// BuildGraph is Build followed by core.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	m, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(m), nil
}

// draft accumulates people and links in first-seen order.
type draft struct {
	order []string
	links map[string][]string
}

func newDraft() *draft {
	return &draft{links: make(map[string][]string)}
}

// person registers name if unseen.
func (d *draft) person(name string) {
	if _, ok := d.links[name]; ok {
		return
	}
	d.links[name] = []string{}
	d.order = append(d.order, name)
}

// link appends v to u's entry, and u to v's entry unless oneWay.
func (d *draft) link(u, v string, oneWay bool) {
	d.person(u)
	d.person(v)
	d.links[u] = append(d.links[u], v)
	if !oneWay {
		d.links[v] = append(d.links[v], u)
	}
}

// Isolated adds n people with no links.
func Isolated(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.person(cfg.idFn(i))
		}

		return nil
	}
}
