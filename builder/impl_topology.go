// SPDX-License-Identifier: MIT
// Package: linkgraph/builder
//
// impl_topology.go - deterministic topologies: Path, Cycle, Star, Complete.
//
// Contract:
//   - People are added via cfg.idFn in ascending index order.
//   - Links are emitted in stable increasing order.
//   - Mirroring follows cfg.oneWay.
//
// Complexity:
//   - Path/Cycle/Star: O(n). Complete: O(n²).

package builder

import "fmt"

// Path returns a Constructor for the line 0─1─…─(n-1).
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.person(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			d.link(cfg.idFn(i-1), cfg.idFn(i), cfg.oneWay)
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0─1─…─(n-1)─0.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.person(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			d.link(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.oneWay)
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0) linked to n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		d.person(hub)
		for i := 1; i < n; i++ {
			d.link(hub, cfg.idFn(i), cfg.oneWay)
		}

		return nil
	}
}

// Complete returns a Constructor linking every pair i<j of n people.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.person(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.link(cfg.idFn(i), cfg.idFn(j), cfg.oneWay)
			}
		}

		return nil
	}
}
