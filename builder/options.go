// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand injects a caller-owned RNG. Panics on nil.
// The RNG is consumed by every stochastic constructor in call order, so one
// RNG shared by several constructors still yields a reproducible union.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
