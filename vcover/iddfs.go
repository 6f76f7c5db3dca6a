// SPDX-License-Identifier: MIT
// Package vcover - IterativeDeepening (depth-limited searches over the cover size).
//
// For k = 0, 1, …, n-1 a depth-limited search asks "is there a cover with at
// most k vertices?", branching on the first uncovered edge like Backtrack.
// The first k that succeeds is the optimum.
//
// Goals:
//   - Admissible pruning: k vertices cover at most k·Δ edges, so a branch
//     with more uncovered edges fails at once.
//   - Invariant: any n-1 vertices of a graph with n ≥ 2 form a cover, so the
//     loop always succeeds; running out of budgets panics with
//     ErrSearchExhausted.
//
// Complexity:
//   - Time: Σ_k O(2^k · deg) node work.
//   - Memory: O(n + m).

package vcover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// IterativeDeepening returns a minimum cover by increasing the size budget.
func IterativeDeepening(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, IterativeDeepeningDFS, opts...)
}

// idSearch owns the state of every depth-limited round.
type idSearch struct {
	// Input (read-only)
	g      *core.Graph
	edges  []core.Edge
	b      *budget
	maxDeg int // Δ, for the k·Δ coverage bound

	// Current search state
	in        []bool
	uncovered int
	stack     []int // vertices of the partial cover, in insertion order

	// Counters
	nodes  int64
	pruned int64
}

func iterativeDeepening(b *budget, g *core.Graph, o Options) (Result, error) {
	s := &idSearch{
		g:         g,
		edges:     g.EdgesUnsafe(),
		b:         b,
		maxDeg:    g.MaxDegree(),
		in:        make([]bool, g.Order()),
		uncovered: g.Size(),
	}

	// Budgets run up to n-1, or to an explicit bound below it.
	ceiling := g.Order() - 1
	if ceiling < 0 {
		ceiling = 0
	}
	if o.UpperBound != NoUpperBound && o.UpperBound < ceiling {
		ceiling = o.UpperBound
	}

	// The first budget that admits a cover is the optimum.
	var k int
	for k = 0; k <= ceiling; k++ {
		s.stack = s.stack[:0]
		if s.limited(0, k) {
			return Result{
				Cover:   NewCover(s.stack...),
				Optimal: true,
				Stats:   Stats{Nodes: s.nodes, Pruned: s.pruned, Budget: k},
			}, nil
		}
		if b.err != nil {
			return Result{Stats: Stats{Nodes: s.nodes, Pruned: s.pruned, Budget: k}}, b.err
		}
	}
	if o.UpperBound != NoUpperBound && o.UpperBound < g.Order()-1 {
		return Result{Stats: Stats{Nodes: s.nodes, Pruned: s.pruned, Budget: ceiling}},
			fmt.Errorf("IterativeDeepening: k=%d: %w", o.UpperBound, ErrBoundTooTight)
	}

	panic(fmt.Errorf("IterativeDeepening: n=%d m=%d k≤%d: %w", g.Order(), g.Size(), ceiling, ErrSearchExhausted))
}

// limited reports whether the current partial cover extends to a cover using
// at most k more vertices. On success s.stack holds the full witness and the
// search state is left in place.
func (s *idSearch) limited(from, k int) bool {
	if s.b.exceeded() {
		return false
	}
	s.nodes++

	if s.uncovered == 0 {
		return true
	}
	if k == 0 || s.uncovered > k*s.maxDeg {
		s.pruned++
		return false
	}

	// uncovered > 0 guarantees an uncovered edge at or after from.
	i := from
	for s.in[s.edges[i].U] || s.in[s.edges[i].V] {
		i++
	}
	e := s.edges[i]
	for _, v := range [2]int{e.U, e.V} {
		s.add(v)
		if s.limited(i+1, k-1) {
			return true
		}
		s.remove(v)
		if s.b.err != nil {
			return false
		}
	}

	return false
}

// add puts v into the partial cover and updates the uncovered count.
func (s *idSearch) add(v int) {
	s.in[v] = true
	s.stack = append(s.stack, v)
	for _, w := range s.g.NeighborsUnsafe(v) {
		if !s.in[w] {
			s.uncovered--
		}
	}
}

// remove undoes the matching add; v must be the top of the stack.
func (s *idSearch) remove(v int) {
	for _, w := range s.g.NeighborsUnsafe(v) {
		if !s.in[w] {
			s.uncovered++
		}
	}
	s.in[v] = false
	s.stack = s.stack[:len(s.stack)-1]
}
