// SPDX-License-Identifier: MIT

// Package lvcover finds minimum vertex covers of simple undirected graphs.
//
// A vertex cover is a set C of vertices such that every edge has at least
// one endpoint in C. The library is organised as subpackages:
//
//	core/       immutable Graph, Edge, statistics and connected components
//	vcover/     solvers: Approximate (factor 2), TabuSearch, and the exact
//	            Backtrack, Memoize, IterativeDeepening, BranchAndBound, SATSolve
//	builder/    deterministic topologies and seeded random models
//	            (Erdős–Rényi, Barabási–Albert, Watts–Strogatz, random regular)
//	graphio/    SNAP-style edge lists and YAML graph documents
//	render/     Graphviz drawings with the cover highlighted
//	experiment/ parallel solver benchmarks with CSV, SQLite and Prometheus output
//
// The lvcover command (cmd/lvcover) exposes solve, generate and experiment.
//
// Quick start:
//
//	g := core.MustNewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
//	res, err := vcover.Solve(ctx, g, vcover.BranchBound)
//	// res.Cover == [1 2] or another optimum of size 2; res.Optimal == true
package lvcover
