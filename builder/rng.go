// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// rng.go — deterministic seed derivation for reproducible instance streams.

package builder

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// Equal inputs give equal outputs; neighbouring streams give unrelated seeds.
// Callers chain it to key a seed on several coordinates, e.g.
// DeriveSeed(DeriveSeed(base, model), size).
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
