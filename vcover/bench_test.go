// SPDX-License-Identifier: MIT
// Benchmarks pre-build every instance outside the timer and measure only the
// solver call. Sizes stay small enough for the exact solvers to finish on CI.

package vcover_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvcover/vcover"
)

func benchmarkSolve(b *testing.B, algo vcover.Algorithm, n int, p float64, opts ...vcover.Option) {
	g := randomGraph(n, p, 11)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vcover.Solve(ctx, g, algo, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApproximate_n500(b *testing.B) {
	benchmarkSolve(b, vcover.Approximation, 500, 0.05)
}

func BenchmarkTabu_n200(b *testing.B) {
	benchmarkSolve(b, vcover.Tabu, 200, 0.05, vcover.WithMaxIterations(1000))
}

func BenchmarkBacktrack_n22(b *testing.B) {
	benchmarkSolve(b, vcover.Backtracking, 22, 0.2)
}

func BenchmarkMemo_n22(b *testing.B) {
	benchmarkSolve(b, vcover.Memoized, 22, 0.2)
}

func BenchmarkIDDFS_n18(b *testing.B) {
	benchmarkSolve(b, vcover.IterativeDeepeningDFS, 18, 0.2)
}

func BenchmarkBranchBound_n30(b *testing.B) {
	benchmarkSolve(b, vcover.BranchBound, 30, 0.2)
}

func BenchmarkSAT_n30(b *testing.B) {
	benchmarkSolve(b, vcover.SAT, 30, 0.2)
}

func BenchmarkBranchBound_Decompose_n40(b *testing.B) {
	benchmarkSolve(b, vcover.BranchBound, 40, 0.05, vcover.WithDecompose())
}
