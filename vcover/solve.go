// SPDX-License-Identifier: MIT
// Package vcover - Solve dispatcher.
//
// Flow:
//  1. Reject nil graphs, resolve and validate options.
//  2. Run the selected solver on the whole graph, or on each connected
//     component when Options.Decompose is set.
//  3. Fill Algorithm, Size and Elapsed.
//  4. Verify the cover; a failure here is a bug and panics.
//
// Errors:
//   - On ErrTimeLimit or a context error an exact solver may still return its
//     incumbent, with Optimal=false, next to the error.

package vcover

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvcover/core"
)

// solverFunc is the internal signature shared by every algorithm.
type solverFunc func(b *budget, g *core.Graph, o Options) (Result, error)

var solvers = map[Algorithm]solverFunc{
	Approximation:         approximate,
	Backtracking:          backtrack,
	Memoized:              memoize,
	IterativeDeepeningDFS: iterativeDeepening,
	Tabu:                  tabuSearch,
	BranchBound:           branchAndBound,
	SAT:                   satSolve,
}

// Solve runs algo on g with opts applied over DefaultOptions.
func Solve(ctx context.Context, g *core.Graph, algo Algorithm, opts ...Option) (Result, error) {
	return SolveWithOptions(ctx, g, algo, resolve(opts))
}

// SolveWithOptions is Solve with a fully resolved Options value.
//
// Errors:
//   - ErrNilGraph, ErrUnsupportedAlgorithm, ErrBadOption (wrapped).
//   - ErrBoundTooTight, ErrTimeLimit or ctx.Err() from the search.
func SolveWithOptions(ctx context.Context, g *core.Graph, algo Algorithm, o Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	fn, ok := solvers[algo]
	if !ok {
		return Result{}, fmt.Errorf("Solve: %v: %w", algo, ErrUnsupportedAlgorithm)
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}

	// One budget spans all components so the time limit is global.
	start := time.Now()
	b := newBudget(ctx, o.TimeLimit)

	var (
		res Result
		err error
	)
	if o.Decompose {
		res, err = solveComponents(b, g, fn, o)
	} else {
		res, err = fn(b, g, o)
	}
	res.Algorithm = algo
	res.Elapsed = time.Since(start)
	if res.Cover == nil && err == nil {
		res.Cover = Cover{}
	}
	res.Size = len(res.Cover)
	if err != nil {
		res.Optimal = false
		return res, err
	}

	// Invariant: a returned cover always covers g.
	if verr := Verify(g, res.Cover); verr != nil {
		panic(fmt.Sprintf("vcover: %v returned an invalid cover: %v", algo, verr))
	}

	return res, nil
}

// solveComponents runs fn on every connected component and merges the covers
// back into parent ids. The minimum cover of a graph is the union of the
// minimum covers of its components, so optimality is preserved.
//
// The explicit upper bound applies to the whole graph, not to a component, so
// it is checked against the merged cover instead of being passed down.
func solveComponents(b *budget, g *core.Graph, fn solverFunc, o Options) (Result, error) {
	comps := g.Components()
	if len(comps) == 0 {
		return fn(b, g, o)
	}
	bound := o.UpperBound
	o.UpperBound = NoUpperBound

	merged := Result{Cover: Cover{}, Optimal: true}
	for _, comp := range comps {
		sub, mapping, err := g.Induced(comp)
		if err != nil {
			return Result{}, fmt.Errorf("Solve: component %v: %w", comp, err)
		}
		part, err := fn(b, sub, o)
		merged.Stats.add(part.Stats)
		merged.Stats.Components++
		if err != nil {
			return Result{Stats: merged.Stats}, err
		}
		for _, v := range part.Cover {
			merged.Cover = append(merged.Cover, mapping[v])
		}
		merged.Optimal = merged.Optimal && part.Optimal
	}
	merged.Cover = NewCover(merged.Cover...)
	if bound != NoUpperBound && merged.Optimal && len(merged.Cover) > bound {
		return Result{Stats: merged.Stats}, fmt.Errorf("Solve: optimum %d > k=%d: %w", len(merged.Cover), bound, ErrBoundTooTight)
	}

	return merged, nil
}
