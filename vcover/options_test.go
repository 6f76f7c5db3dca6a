// SPDX-License-Identifier: MIT

package vcover_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vcover"
)

func TestDefaultOptions(t *testing.T) {
	o := vcover.DefaultOptions()
	require.Equal(t, vcover.NoUpperBound, o.UpperBound)
	require.True(t, o.Seeding)
	require.Equal(t, 7, o.TabuTenure)
	require.Equal(t, 10000, o.MaxIterations)
	require.Equal(t, 1000, o.Penalty)
	require.Equal(t, 1000, o.StagnationLimit)
	require.Equal(t, vcover.StartApprox, o.TabuStart)
	require.NoError(t, o.Validate())
}

func TestOptionConstructors_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { vcover.WithUpperBound(-1) })
	require.Panics(t, func() { vcover.WithTabuTenure(0) })
	require.Panics(t, func() { vcover.WithMaxIterations(0) })
	require.Panics(t, func() { vcover.WithStagnationLimit(-1) })
	require.Panics(t, func() { vcover.WithPenalty(0) })
	require.Panics(t, func() { vcover.WithTabuStart(vcover.TabuStart(9)) })
	require.Panics(t, func() { vcover.WithTimeLimit(-time.Second) })
	require.NotPanics(t, func() { vcover.WithUpperBound(0) })
}

func TestOptions_Validate(t *testing.T) {
	cases := []func(*vcover.Options){
		func(o *vcover.Options) { o.UpperBound = -5 },
		func(o *vcover.Options) { o.TabuTenure = 0 },
		func(o *vcover.Options) { o.MaxIterations = 0 },
		func(o *vcover.Options) { o.StagnationLimit = -1 },
		func(o *vcover.Options) { o.Penalty = 0 },
		func(o *vcover.Options) { o.TabuStart = 3 },
		func(o *vcover.Options) { o.TimeLimit = -1 },
	}
	for _, mutate := range cases {
		o := vcover.DefaultOptions()
		mutate(&o)
		require.ErrorIs(t, o.Validate(), vcover.ErrBadOption)

		_, err := vcover.SolveWithOptions(context.Background(), triangle(), vcover.Approximation, o)
		require.ErrorIs(t, err, vcover.ErrBadOption)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range vcover.Algorithms() {
		got, err := vcover.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		require.Equal(t, algo, got)
	}

	got, err := vcover.ParseAlgorithm("  TABU ")
	require.NoError(t, err)
	require.Equal(t, vcover.Tabu, got)

	_, err = vcover.ParseAlgorithm("simplex")
	require.ErrorIs(t, err, vcover.ErrUnsupportedAlgorithm)

	require.Equal(t, "Algorithm(42)", vcover.Algorithm(42).String())
	require.True(t, vcover.Memoized.Exact())
	require.False(t, vcover.Tabu.Exact())
}

func TestSolve_Errors(t *testing.T) {
	for _, algo := range vcover.Algorithms() {
		_, err := vcover.Solve(context.Background(), nil, algo)
		require.ErrorIs(t, err, vcover.ErrNilGraph)
	}

	_, err := vcover.Solve(context.Background(), triangle(), vcover.Algorithm(99))
	require.ErrorIs(t, err, vcover.ErrUnsupportedAlgorithm)
}

func TestUpperBound(t *testing.T) {
	g := petersen()
	for _, algo := range exactAlgorithms {
		t.Run(algo.String(), func(t *testing.T) {
			// Tight and loose bounds still find the optimum.
			for _, k := range []int{6, 7, 10} {
				res, err := vcover.Solve(context.Background(), g, algo, vcover.WithUpperBound(k))
				require.NoError(t, err)
				require.Equal(t, 6, res.Size)
			}

			_, err := vcover.Solve(context.Background(), g, algo, vcover.WithUpperBound(5))
			require.ErrorIs(t, err, vcover.ErrBoundTooTight)
		})
	}
}

func TestTimeLimit_ExactReturnsIncumbent(t *testing.T) {
	g := randomGraph(80, 0.3, 3)

	res, err := vcover.Solve(context.Background(), g, vcover.Backtracking,
		vcover.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, vcover.ErrTimeLimit)
	require.False(t, res.Optimal)
	// The approximation seed survives as incumbent.
	require.NoError(t, vcover.Verify(g, res.Cover))
	require.Equal(t, len(res.Cover), res.Size)

	_, err = vcover.Solve(context.Background(), g, vcover.Memoized, vcover.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, vcover.ErrTimeLimit)
}

func TestTimeLimit_TabuReturnsBest(t *testing.T) {
	g := randomGraph(80, 0.3, 3)
	res, err := vcover.Solve(context.Background(), g, vcover.Tabu, vcover.WithTimeLimit(time.Nanosecond))
	require.NoError(t, err)
	requireCover(t, g, res)
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := petersen()
	for _, algo := range []vcover.Algorithm{
		vcover.Backtracking, vcover.Memoized, vcover.IterativeDeepeningDFS,
		vcover.BranchBound, vcover.SAT, vcover.Tabu,
	} {
		res, err := vcover.Solve(ctx, g, algo)
		require.ErrorIs(t, err, context.Canceled, algo.String())
		require.False(t, res.Optimal)
	}
}

func TestDecompose(t *testing.T) {
	// Triangle {0,1,2}, isolated 3, path 4-5-6-7, K_{2,3} on 8..12.
	g := core.MustNewGraph(13, []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2},
		{U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7},
		{U: 8, V: 10}, {U: 8, V: 11}, {U: 8, V: 12}, {U: 9, V: 10}, {U: 9, V: 11}, {U: 9, V: 12},
	})
	for _, algo := range exactAlgorithms {
		whole, err := vcover.Solve(context.Background(), g, algo)
		require.NoError(t, err)

		split, err := vcover.Solve(context.Background(), g, algo, vcover.WithDecompose())
		require.NoError(t, err)
		requireCover(t, g, split)
		require.Equal(t, 2+2+2, split.Size)
		require.Equal(t, whole.Size, split.Size)
		require.True(t, split.Optimal)
		require.Equal(t, 3, split.Stats.Components)
	}

	res, err := vcover.Solve(context.Background(), g, vcover.Approximation, vcover.WithDecompose())
	require.NoError(t, err)
	require.False(t, res.Optimal)
	requireCover(t, g, res)

	_, err = vcover.Solve(context.Background(), g, vcover.Memoized, vcover.WithDecompose(), vcover.WithUpperBound(5))
	require.ErrorIs(t, err, vcover.ErrBoundTooTight)

	edgeless, err := vcover.Solve(context.Background(), core.MustNewGraph(5, nil), vcover.Backtracking, vcover.WithDecompose())
	require.NoError(t, err)
	require.Zero(t, edgeless.Size)
	require.True(t, edgeless.Optimal)
}

func TestSolve_ElapsedAndAlgorithm(t *testing.T) {
	res, err := vcover.Solve(context.Background(), petersen(), vcover.BranchBound)
	require.NoError(t, err)
	require.Equal(t, vcover.BranchBound, res.Algorithm)
	require.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
	require.Positive(t, res.Stats.Nodes)
}

func TestCover(t *testing.T) {
	c := vcover.NewCover(5, 1, 3, 1, 5)
	require.Equal(t, vcover.Cover{1, 3, 5}, c)
	require.Equal(t, 3, c.Len())
	require.True(t, c.Contains(3))
	require.False(t, c.Contains(2))
	require.Equal(t, []bool{false, true, false, true}, c.Mask(4))

	cl := c.Clone()
	cl[0] = 9
	require.Equal(t, 1, c[0])
	require.Nil(t, vcover.Cover(nil).Clone())
	require.Empty(t, vcover.NewCover())
}

func TestVerify(t *testing.T) {
	g := pathGraph(4)

	require.NoError(t, vcover.Verify(g, vcover.Cover{1, 2}))
	require.ErrorIs(t, vcover.Verify(g, vcover.Cover{1}), vcover.ErrNotACover)
	require.ErrorIs(t, vcover.Verify(g, vcover.Cover{1, 4}), vcover.ErrVertexOutOfRange)
	require.ErrorIs(t, vcover.Verify(g, vcover.Cover{-1}), vcover.ErrVertexOutOfRange)
	require.ErrorIs(t, vcover.Verify(nil, nil), vcover.ErrNilGraph)
}
