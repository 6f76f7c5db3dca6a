// SPDX-License-Identifier: MIT

package vcover_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vcover"
)

type scenario struct {
	name string
	g    *core.Graph
	opt  int
}

func scenarios() []scenario {
	return []scenario{
		{"triangle", triangle(), 2},
		{"path4", pathGraph(4), 2},
		{"star5", starGraph(5), 1},
		{"no edges", core.MustNewGraph(4, nil), 0},
		{"empty", core.MustNewGraph(0, nil), 0},
		{"single edge", pathGraph(2), 1},
		{"K5", completeGraph(5), 4},
		{"C7", cycleGraph(7), 4},
		{"C8", cycleGraph(8), 4},
		{"K3,4", completeBipartite(3, 4), 3},
		{"petersen", petersen(), 6},
	}
}

// TestExactSolvers_Scenarios checks every exact solver on graphs with a known τ.
func TestExactSolvers_Scenarios(t *testing.T) {
	for _, sc := range scenarios() {
		for _, algo := range exactAlgorithms {
			t.Run(sc.name+"/"+algo.String(), func(t *testing.T) {
				res, err := vcover.Solve(context.Background(), sc.g, algo)
				require.NoError(t, err)
				requireCover(t, sc.g, res)
				require.Equal(t, sc.opt, res.Size)
				require.True(t, res.Optimal)
				require.Equal(t, algo, res.Algorithm)
			})
		}
	}
}

// TestApproximate_Scenarios checks validity and the factor-2 guarantee.
func TestApproximate_Scenarios(t *testing.T) {
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			res, err := vcover.Approximate(sc.g)
			require.NoError(t, err)
			requireCover(t, sc.g, res)
			require.LessOrEqual(t, res.Size, 2*sc.opt)
			require.GreaterOrEqual(t, res.Size, sc.opt)
			require.False(t, res.Optimal)
		})
	}

	// Canonical scan: the star yields {0,1}.
	res, err := vcover.Approximate(starGraph(5))
	require.NoError(t, err)
	require.Equal(t, vcover.Cover{0, 1}, res.Cover)
}

// TestTabuSearch_Scenarios checks validity and that tabu never beats the optimum.
func TestTabuSearch_Scenarios(t *testing.T) {
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			res, err := vcover.TabuSearch(sc.g, vcover.WithSeed(7))
			require.NoError(t, err)
			requireCover(t, sc.g, res)
			require.GreaterOrEqual(t, res.Size, sc.opt)
			require.False(t, res.Optimal)
		})
	}

	res, err := vcover.TabuSearch(starGraph(5))
	require.NoError(t, err)
	require.Equal(t, vcover.Cover{0}, res.Cover)
}

// TestExactSolvers_AgreeWithBruteForce compares all exact solvers on random graphs.
func TestExactSolvers_AgreeWithBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		n := 6 + int(seed%7)
		p := 0.2 + 0.05*float64(seed%6)
		g := randomGraph(n, p, seed)
		want := bruteForceOptimum(t, g)

		for _, algo := range exactAlgorithms {
			t.Run(fmt.Sprintf("seed%d/%s", seed, algo), func(t *testing.T) {
				res, err := vcover.Solve(context.Background(), g, algo)
				require.NoError(t, err)
				requireCover(t, g, res)
				require.Equal(t, want, res.Size)
			})
		}

		approx, err := vcover.Approximate(g)
		require.NoError(t, err)
		require.LessOrEqual(t, approx.Size, 2*want)

		tabu, err := vcover.TabuSearch(g, vcover.WithSeed(seed))
		require.NoError(t, err)
		require.GreaterOrEqual(t, tabu.Size, want)
	}
}

// TestExactSolvers_WithoutSeeding starts from the trivial cover.
func TestExactSolvers_WithoutSeeding(t *testing.T) {
	g := petersen()
	for _, algo := range []vcover.Algorithm{vcover.Backtracking, vcover.BranchBound} {
		res, err := vcover.Solve(context.Background(), g, algo, vcover.WithoutSeeding())
		require.NoError(t, err)
		require.Equal(t, 6, res.Size)
	}
}

// TestTabuSearch_Deterministic runs the same seed twice.
func TestTabuSearch_Deterministic(t *testing.T) {
	g := randomGraph(40, 0.15, 99)
	opts := []vcover.Option{vcover.WithSeed(42), vcover.WithMaxIterations(2000)}

	a, err := vcover.TabuSearch(g, opts...)
	require.NoError(t, err)
	b, err := vcover.TabuSearch(g, opts...)
	require.NoError(t, err)

	require.Equal(t, a.Cover, b.Cover)
	require.Equal(t, a.Stats.Iterations, b.Stats.Iterations)
}

// TestTabuSearch_HugePenalty: any penalty above n ranks moves the same way,
// so an oversized one must reproduce the default run exactly.
func TestTabuSearch_HugePenalty(t *testing.T) {
	for seed := int64(1); seed <= 80; seed++ {
		n := 6 + int(seed%9)
		g := randomGraph(n, 0.3, seed)
		base := []vcover.Option{vcover.WithSeed(seed), vcover.WithTabuStart(vcover.StartFull)}

		want, err := vcover.TabuSearch(g, base...)
		require.NoError(t, err)
		got, err := vcover.TabuSearch(g, append(base, vcover.WithPenalty(math.MaxInt))...)
		require.NoError(t, err)

		requireCover(t, g, got)
		require.Equal(t, want.Cover, got.Cover, "seed %d", seed)
		require.GreaterOrEqual(t, got.Size, bruteForceOptimum(t, g))
	}
}

// TestTabuSearch_StartFull shrinks the all-vertices start.
func TestTabuSearch_StartFull(t *testing.T) {
	g := core.MustNewGraph(7, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}) // 4,5,6 isolated
	res, err := vcover.TabuSearch(g, vcover.WithTabuStart(vcover.StartFull))
	require.NoError(t, err)
	requireCover(t, g, res)
	require.Equal(t, 2, res.Size)
}

// TestTabuSearch_StopRules checks both iteration caps.
func TestTabuSearch_StopRules(t *testing.T) {
	g := randomGraph(30, 0.2, 5)

	res, err := vcover.TabuSearch(g, vcover.WithMaxIterations(10), vcover.WithStagnationLimit(0))
	require.NoError(t, err)
	require.Equal(t, 10, res.Stats.Iterations)

	res, err = vcover.TabuSearch(g, vcover.WithMaxIterations(100000), vcover.WithStagnationLimit(25))
	require.NoError(t, err)
	require.Less(t, res.Stats.Iterations, 100000)
	requireCover(t, g, res)
}

// TestSolvers_DoNotMutateGraph re-reads the graph after every solver.
func TestSolvers_DoNotMutateGraph(t *testing.T) {
	g := petersen()
	before := g.Edges()
	for _, algo := range vcover.Algorithms() {
		_, err := vcover.Solve(context.Background(), g, algo)
		require.NoError(t, err)
		require.Equal(t, before, g.Edges(), algo.String())
	}
}

// TestIterativeDeepening_Budget reports the final k.
func TestIterativeDeepening_Budget(t *testing.T) {
	res, err := vcover.IterativeDeepening(petersen())
	require.NoError(t, err)
	require.Equal(t, 6, res.Stats.Budget)

	res, err = vcover.IterativeDeepening(core.MustNewGraph(3, nil))
	require.NoError(t, err)
	require.Equal(t, 0, res.Stats.Budget)
	require.Empty(t, res.Cover)
}

// TestMemoize_CacheStats checks the cache is exercised on a graph with
// overlapping subproblems.
func TestMemoize_CacheStats(t *testing.T) {
	res, err := vcover.Memoize(completeGraph(7))
	require.NoError(t, err)
	require.Equal(t, 6, res.Size)
	require.Positive(t, res.Stats.CacheEntries)
	require.Positive(t, res.Stats.CacheHits)
}
