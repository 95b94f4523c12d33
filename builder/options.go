// SPDX-License-Identifier: MIT
// Package: linkgraph/builder
//
// options.go - functional options for the builder package.
//
// Option constructors panic on nil input (nil scheme, nil rng).

package builder

import "math/rand"

// BuilderOption configures a Build call.
type BuilderOption func(*builderConfig)

// WithIDScheme sets how person indices become names.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a private RNG for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithOneWay writes each link only into the first person's entry.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) { c.oneWay = true }
}
