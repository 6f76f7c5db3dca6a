// SPDX-License-Identifier: MIT
// Package vcover - RNG utilities for the heuristic solvers.
//
// Goals:
//   - Determinism: same seed ⇒ identical tabu runs.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every solve creates its own.

package vcover

import "math/rand"

// defaultRNGSeed replaces a zero seed so the default run is reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
