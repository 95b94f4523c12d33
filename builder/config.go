// SPDX-License-Identifier: MIT
// Package: linkgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn   = DefaultIDFn ("0","1","2",...)
//   • rng    = nil (no randomness unless seeded)
//   • oneWay = false (every link mirrored)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	oneWay bool
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
