// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_barabasi_albert.go — BarabasiAlbert(n, m): preferential attachment.
//
// Canonical model:
//   • Seed: a star on m+1 vertices (center 0, leaves 1..m).
//   • Each new vertex s = m+1..n-1 attaches to m distinct existing vertices
//     drawn with probability proportional to degree: draws are uniform over
//     a list holding every vertex once per incident edge.
//
// Contract:
//   • 1 ≤ m < n (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity: O(n·m) expected.
//
// Determinism:
//   • Targets of a new vertex are linked in ascending order.

package builder

import "sort"

// BarabasiAlbert returns a Constructor that appends a preferential-attachment graph.
func BarabasiAlbert(n, m int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if m < 1 || m >= n {
			return builderErrorf(MethodBarabasiAlbert, ErrTooFewVertices, "need 1 ≤ m < n, got n=%d m=%d", n, m)
		}
		rng, err := cfg.requireRand(MethodBarabasiAlbert)
		if err != nil {
			return err
		}

		base := d.block(n)
		repeated := make([]int, 0, 2*n*m)
		for leaf := 1; leaf <= m; leaf++ {
			d.link(base, base+leaf)
			repeated = append(repeated, 0, leaf)
		}

		targets := make(map[int]struct{}, m)
		picked := make([]int, 0, m)
		for s := m + 1; s < n; s++ {
			for k := range targets {
				delete(targets, k)
			}
			for len(targets) < m {
				targets[repeated[rng.Intn(len(repeated))]] = struct{}{}
			}
			picked = picked[:0]
			for t := range targets {
				picked = append(picked, t)
			}
			sort.Ints(picked)
			for _, t := range picked {
				d.link(base+s, base+t)
				repeated = append(repeated, t, s)
			}
		}

		return nil
	}
}
