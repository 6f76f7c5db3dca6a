// SPDX-License-Identifier: MIT

// Package vcover computes minimum and near-minimum vertex covers of a core.Graph.
//
// A vertex cover is a set of vertices touching every edge. The package offers:
//
//   - Approximate: maximal-matching 2-approximation, O(n + m).
//   - Backtrack: exact DFS over the first uncovered edge, seeded with the
//     approximation as upper bound, O(2^OPT · m) in the worst case.
//   - Memoize: exact recursion over residual edge sets with a memo cache;
//     memory grows with the number of distinct residual sets.
//   - IterativeDeepening: exact, tries budgets k = 0, 1, … until one fits.
//   - BranchAndBound: exact, branches on a max-degree vertex and bounds with
//     a matching of the bipartite double cover.
//   - SATSolve: exact, delegates to the gophersat pseudo-boolean optimizer.
//   - TabuSearch: flip-move local search with a tabu list and aspiration.
//
// Every solver shares the signature
//
//	func(g *core.Graph, opts ...Option) (Result, error)
//
// and routes through Solve, which measures Elapsed, honors WithTimeLimit and
// context cancellation, optionally solves components independently
// (WithDecompose), and verifies the returned cover.
//
// Result.Optimal is true only when an exact algorithm completed its search.
// Solvers keep all state per call, so one graph may be solved concurrently.
//
// Use the exact solvers on small instances (up to a few dozen vertices in
// dense graphs); use Approximate or TabuSearch beyond that.
package vcover
