// SPDX-License-Identifier: MIT
// Package vcover_test shares graph fixtures and a brute-force oracle across
// the solver tests.

package vcover_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vcover"
)

// exactAlgorithms are the solvers that must agree on the optimum.
var exactAlgorithms = []vcover.Algorithm{
	vcover.Backtracking,
	vcover.Memoized,
	vcover.IterativeDeepeningDFS,
	vcover.BranchBound,
	vcover.SAT,
}

func triangle() *core.Graph {
	return core.MustNewGraph(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
}

func pathGraph(n int) *core.Graph {
	edges := make([]core.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}
	return core.MustNewGraph(n, edges)
}

func cycleGraph(n int) *core.Graph {
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{U: i, V: (i + 1) % n})
	}
	return core.MustNewGraph(n, edges)
}

// starGraph has center 0 and leaves 1..leaves.
func starGraph(leaves int) *core.Graph {
	edges := make([]core.Edge, 0, leaves)
	for i := 1; i <= leaves; i++ {
		edges = append(edges, core.Edge{U: 0, V: i})
	}
	return core.MustNewGraph(leaves+1, edges)
}

func completeGraph(n int) *core.Graph {
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, core.Edge{U: u, V: v})
		}
	}
	return core.MustNewGraph(n, edges)
}

func completeBipartite(a, b int) *core.Graph {
	var edges []core.Edge
	for u := 0; u < a; u++ {
		for v := 0; v < b; v++ {
			edges = append(edges, core.Edge{U: u, V: a + v})
		}
	}
	return core.MustNewGraph(a+b, edges)
}

// petersen is the Petersen graph: τ = 6.
func petersen() *core.Graph {
	edges := []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0},
		{U: 0, V: 5}, {U: 1, V: 6}, {U: 2, V: 7}, {U: 3, V: 8}, {U: 4, V: 9},
		{U: 5, V: 7}, {U: 7, V: 9}, {U: 9, V: 6}, {U: 6, V: 8}, {U: 8, V: 5},
	}
	return core.MustNewGraph(10, edges)
}

// randomGraph is a G(n,p) instance fixed by seed.
func randomGraph(n int, p float64, seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, core.Edge{U: u, V: v})
			}
		}
	}
	return core.MustNewGraph(n, edges)
}

// bruteForceOptimum enumerates all subsets; n must stay small.
func bruteForceOptimum(t *testing.T, g *core.Graph) int {
	t.Helper()
	n := g.Order()
	require.LessOrEqual(t, n, 16, "brute force oracle is exponential")

	best := n
	edges := g.Edges()
	for mask := uint32(0); mask < 1<<uint(n); mask++ {
		size := bits.OnesCount32(mask)
		if size >= best {
			continue
		}
		ok := true
		for _, e := range edges {
			if mask&(1<<uint(e.U)) == 0 && mask&(1<<uint(e.V)) == 0 {
				ok = false
				break
			}
		}
		if ok {
			best = size
		}
	}
	return best
}

// requireCover asserts res is a consistent, valid cover of g.
func requireCover(t *testing.T, g *core.Graph, res vcover.Result) {
	t.Helper()
	require.NoError(t, vcover.Verify(g, res.Cover))
	require.Equal(t, len(res.Cover), res.Size)
	require.IsIncreasing(t, []int(res.Cover))
}
