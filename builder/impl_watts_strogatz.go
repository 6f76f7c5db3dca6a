// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_watts_strogatz.go — WattsStrogatz(n, k, p): small-world rewiring.
//
// Canonical model:
//   • Ring lattice: vertex i joins i+1..i+k/2 (mod n).
//   • For j = 1..k/2 and every i, with probability p the edge i-(i+j) is
//     replaced by i-w with w uniform among vertices that are neither i nor
//     already adjacent to i. Vertices adjacent to everyone keep their edge.
//
// Contract:
//   • n ≥ 3, 2 ≤ k < n (else ErrTooFewVertices); odd k behaves as k-1.
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity: O(n·k) expected.
//
// Determinism:
//   • Edges are emitted in ascending (U,V) order after rewiring.

package builder

import "sort"

// WattsStrogatz returns a Constructor that appends a Watts–Strogatz graph.
func WattsStrogatz(n, k int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodWattsStrogatz, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if k < 2 || k >= n {
			return builderErrorf(MethodWattsStrogatz, ErrTooFewVertices, "need 2 ≤ k < n, got n=%d k=%d", n, k)
		}
		if err := validateProbability(MethodWattsStrogatz, p); err != nil {
			return err
		}
		rng, err := cfg.requireRand(MethodWattsStrogatz)
		if err != nil {
			return err
		}

		half := k / 2
		edges := make(pairSet, n*half)
		deg := make([]int, n)
		for j := 1; j <= half; j++ {
			for i := 0; i < n; i++ {
				v := (i + j) % n
				if !edges.has(i, v) {
					edges.add(i, v)
					deg[i]++
					deg[v]++
				}
			}
		}

		for j := 1; j <= half; j++ {
			for i := 0; i < n; i++ {
				if rng.Float64() >= p {
					continue
				}
				v := (i + j) % n
				if !edges.has(i, v) || deg[i] >= n-1 {
					continue
				}
				w := rng.Intn(n)
				for w == i || edges.has(i, w) {
					w = rng.Intn(n)
				}
				edges.remove(i, v)
				deg[v]--
				edges.add(i, w)
				deg[w]++
			}
		}

		sorted := make([][2]int, 0, len(edges))
		for key := range edges {
			sorted = append(sorted, key)
		}
		sort.Slice(sorted, func(a, b int) bool {
			if sorted[a][0] != sorted[b][0] {
				return sorted[a][0] < sorted[b][0]
			}
			return sorted[a][1] < sorted[b][1]
		})

		base := d.block(n)
		for _, e := range sorted {
			d.link(base+e[0], base+e[1])
		}

		return nil
	}
}
