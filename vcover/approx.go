// SPDX-License-Identifier: MIT
// Package vcover - Approximate (maximal-matching 2-approximation).
//
// Scanning edges in canonical order and taking both endpoints of every edge
// that is still uncovered builds a maximal matching M and returns V(M).
//
// Goals:
//   - Guarantee: any cover contains one endpoint of each matched edge, so
//     |C| = 2|M| ≤ 2·OPT.
//   - Determinism: no randomness; the same graph always yields the same cover.
//   - Reuse: approxMask seeds the incumbent of every exact search.
//
// Complexity:
//   - Time: O(n + m).
//   - Memory: O(n) for the membership mask.

package vcover

import (
	"context"

	"github.com/katalvlaran/lvcover/core"
)

// Approximate returns a cover of size at most twice the optimum.
func Approximate(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, Approximation, opts...)
}

func approximate(_ *budget, g *core.Graph, _ Options) (Result, error) {
	mask := approxMask(g)

	return Result{Cover: coverFromMask(mask)}, nil
}

// approxMask is the membership mask of the approximation cover; exact solvers
// use it as their initial incumbent.
func approxMask(g *core.Graph) []bool {
	mask := make([]bool, g.Order())
	for _, e := range g.EdgesUnsafe() {
		// An uncovered edge joins the matching with both endpoints.
		if !mask[e.U] && !mask[e.V] {
			mask[e.U] = true
			mask[e.V] = true
		}
	}

	return mask
}

// initialIncumbent returns the starting upper-bound witness for exact searches:
// the approximation cover, or the non-isolated vertices without seeding.
func initialIncumbent(g *core.Graph, o Options) Cover {
	if o.Seeding {
		return coverFromMask(approxMask(g))
	}

	return Cover(g.NonIsolated())
}
