// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • rng defaults to nil: deterministic topologies need none, stochastic
//     ones fail with ErrNeedRandSource instead of silently seeding from time.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig returns the defaults with opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// requireRand returns the configured RNG or ErrNeedRandSource with method context.
func (c builderConfig) requireRand(method string) (*rand.Rand, error) {
	if c.rng == nil {
		return nil, builderErrorf(method, ErrNeedRandSource, "rng is required")
	}

	return c.rng, nil
}
