// SPDX-License-Identifier: MIT
// Package vcover - SATSolve (exact solve through a pseudo-boolean optimizer).
//
// Model:
//   - One boolean x_i per non-isolated vertex; isolated vertices never
//     appear, so variable ids stay dense.
//   - One clause (x_u ∨ x_v) per edge.
//   - Cost Σ x_i; an explicit upper bound becomes the cardinality
//     constraint Σ ¬x_i ≥ n' − k.
//
// Minimize proves optimality of the model it leaves in the solver.
//
// Limits:
//   - The optimizer runs to completion once started; the time limit and the
//     context are only checked before and after it.

package vcover

import (
	"context"
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/lvcover/core"
)

// SATSolve returns a minimum cover computed by the gophersat PB optimizer.
func SATSolve(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, SAT, opts...)
}

func satSolve(b *budget, g *core.Graph, o Options) (Result, error) {
	if b.check() {
		return Result{}, b.err
	}
	if g.Size() == 0 {
		return Result{Cover: Cover{}, Optimal: true}, nil
	}

	// Dense variable ids 1..n' over non-isolated vertices.
	vertexOf := g.NonIsolated()
	varOf := make(map[int]int, len(vertexOf))
	for i, v := range vertexOf {
		varOf[v] = i + 1
	}

	// Coverage clauses.
	edges := g.EdgesUnsafe()
	constrs := make([]solver.CardConstr, 0, len(edges))
	for _, e := range edges {
		constrs = append(constrs, solver.AtLeast1(varOf[e.U], varOf[e.V]))
	}
	if o.UpperBound != NoUpperBound {
		lits := make([]int, len(vertexOf))
		for i := range lits {
			lits[i] = -(i + 1)
		}
		// Σ x_i ≤ k  ⇔  Σ ¬x_i ≥ N − k.
		if need := len(vertexOf) - o.UpperBound; need > 0 {
			constrs = append(constrs, solver.CardConstr{Lits: lits, AtLeast: need})
		}
	}

	// Objective: minimise the number of true variables.
	pb := solver.ParseCardConstrs(constrs)
	costLits := make([]solver.Lit, len(vertexOf))
	weights := make([]int, len(vertexOf))
	for i := range vertexOf {
		costLits[i] = solver.IntToLit(int32(i + 1))
		weights[i] = 1
	}
	pb.SetCostFunc(costLits, weights)

	s := solver.New(pb)
	// A negative cost means UNSAT, which only the explicit bound can cause.
	cost := s.Minimize()
	if cost < 0 {
		return Result{Stats: Stats{Nodes: 1}}, fmt.Errorf("SATSolve: k=%d: %w", o.UpperBound, ErrBoundTooTight)
	}
	// Minimize leaves the optimal assignment in the solver; one bool per variable.
	model := s.Model()
	if b.check() {
		return Result{}, b.err
	}

	cover := make(Cover, 0, cost)
	for i, v := range vertexOf {
		if i < len(model) && model[i] {
			cover = append(cover, v)
		}
	}

	return Result{Cover: cover, Optimal: true, Stats: Stats{Nodes: 1}}, nil
}
