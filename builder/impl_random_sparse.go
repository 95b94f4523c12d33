// SPDX-License-Identifier: MIT
// Package: linkgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, is linked with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials run for i asc, then j asc, so a fixed seed fixes the mapping.

package builder

import "fmt"

// RandomSparse returns a Constructor sampling links among n people with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters before touching the draft.
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) People in index order.
		for i := 0; i < n; i++ {
			d.person(cfg.idFn(i))
		}

		// 3) Bernoulli trial per pair; p ∈ {0,1} needs no RNG.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				switch {
				case p == probMax:
					hit = true
				case p == probMin:
					hit = false
				default:
					hit = cfg.rng.Float64() < p
				}
				if hit {
					d.link(cfg.idFn(i), cfg.idFn(j), cfg.oneWay)
				}
			}
		}

		return nil
	}
}
