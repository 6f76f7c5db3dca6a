// SPDX-License-Identifier: MIT
// Package vcover - BranchAndBound (exact search on residual vertex degrees).
//
// The residual graph is G minus the partial cover C. At each node:
//
//  1. Reduce: while some residual vertex has degree 1, put its neighbor in C
//     (some optimal cover does so).
//  2. If no residual edge is left, C is a candidate incumbent.
//  3. Bound: prune when |C| + ⌈μ₂/2⌉ ≥ best (see matching.go).
//  4. Branch on a maximum-degree residual vertex v: either v ∈ C, or every
//     residual neighbor of v is in C.
//
// Goals:
//   - Seeding: the incumbent is seeded exactly as in Backtrack.
//   - Undo trail: state changes are recorded on a trail and rolled back on
//     exit, so one set of buffers serves the whole tree.
//   - Determinism: ties in the branching vertex go to the lowest id.
//
// Complexity:
//   - Worst case exponential; pruning and reduction carry practical speed.
//   - Per node: O(V · E) bound work, O(deg) per add/undo.
//   - Memory: O(n) state plus O(n) trail.

package vcover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// BranchAndBound returns a minimum cover using degree branching and a
// matching lower bound.
func BranchAndBound(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, BranchBound, opts...)
}

// bbSearch owns all mutable state of one branch-and-bound run.
type bbSearch struct {
	// Input (read-only)
	g *core.Graph
	b *budget

	// Current search state
	in        []bool // membership in the partial cover C
	rdeg      []int  // residual degree, valid for vertices not in C
	size      int    // |C|
	uncovered int    // residual edges
	trail     []int  // vertices added to C, in order, for undo

	// Current best incumbent (UB)
	best     []bool
	bestSize int
	found    bool // false while only the explicit bound is known

	// Counters
	nodes  int64
	pruned int64

	// Scratch for doubleCoverBound
	matchL, matchR, parent, queue []int
}

func branchAndBound(b *budget, g *core.Graph, o Options) (Result, error) {
	n := g.Order()
	e := &bbSearch{
		g:         g,
		b:         b,
		in:        make([]bool, n),
		rdeg:      make([]int, n),
		uncovered: g.Size(),
		best:      make([]bool, n),
		matchL:    make([]int, n),
		matchR:    make([]int, n),
		parent:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		e.rdeg[v] = g.Degree(v)
	}

	// Seed the incumbent; an explicit bound below it replaces it.
	seed := initialIncumbent(g, o)
	copy(e.best, seed.Mask(n))
	e.bestSize, e.found = len(seed), true
	if o.UpperBound != NoUpperBound && o.UpperBound < e.bestSize {
		e.bestSize, e.found = o.UpperBound+1, false
	}

	e.search()

	res := Result{Stats: Stats{Nodes: e.nodes, Pruned: e.pruned}}
	if e.found {
		res.Cover = coverFromMask(e.best)
	}
	if b.err != nil {
		return res, b.err
	}
	if !e.found {
		return res, fmt.Errorf("BranchAndBound: k=%d: %w", o.UpperBound, ErrBoundTooTight)
	}
	res.Optimal = true

	return res, nil
}

func (e *bbSearch) search() {
	if e.b.exceeded() {
		return
	}
	e.nodes++

	mark := len(e.trail)
	defer e.undoTo(mark)

	// Forced moves first, then the cheap size test.
	e.reduce()
	if e.size >= e.bestSize {
		e.pruned++
		return
	}
	// Leaf: every residual edge is covered.
	if e.uncovered == 0 {
		copy(e.best, e.in)
		e.bestSize, e.found = e.size, true
		return
	}
	// Admissible lower bound on the residual graph.
	if e.size+e.doubleCoverBound() >= e.bestSize {
		e.pruned++
		return
	}

	v := e.pickMaxDegree()

	// Branch 1: v ∈ C.
	e.add(v)
	e.search()
	e.undoTo(len(e.trail) - 1)
	if e.b.err != nil {
		return
	}

	// Branch 2: N(v) ⊆ C. Pointless when it cannot beat the incumbent.
	if e.size+e.rdeg[v] >= e.bestSize {
		e.pruned++
		return
	}
	branch := len(e.trail)
	for _, w := range e.g.NeighborsUnsafe(v) {
		if !e.in[w] {
			e.add(w)
		}
	}
	e.search()
	e.undoTo(branch)
}

// reduce applies the degree-1 rule until it no longer fires.
func (e *bbSearch) reduce() {
	for changed := true; changed && e.size < e.bestSize; {
		changed = false
		for u := range e.in {
			if e.in[u] || e.rdeg[u] != 1 {
				continue
			}
			for _, w := range e.g.NeighborsUnsafe(u) {
				if !e.in[w] {
					e.add(w)
					changed = true
					break
				}
			}
		}
	}
}

// pickMaxDegree returns the lowest-id residual vertex of maximum degree.
func (e *bbSearch) pickMaxDegree() int {
	best, deg := -1, 0
	for v := range e.in {
		if !e.in[v] && e.rdeg[v] > deg {
			best, deg = v, e.rdeg[v]
		}
	}

	return best
}

// add puts v into C, records it on the trail and lowers neighbour degrees.
func (e *bbSearch) add(v int) {
	e.in[v] = true
	e.size++
	e.trail = append(e.trail, v)
	for _, w := range e.g.NeighborsUnsafe(v) {
		if !e.in[w] {
			e.rdeg[w]--
			e.uncovered--
		}
	}
}

// undoTo removes vertices from C until the trail has length mark.
func (e *bbSearch) undoTo(mark int) {
	for len(e.trail) > mark {
		v := e.trail[len(e.trail)-1]
		e.trail = e.trail[:len(e.trail)-1]
		for _, w := range e.g.NeighborsUnsafe(v) {
			if !e.in[w] {
				e.rdeg[w]++
				e.uncovered++
			}
		}
		e.in[v] = false
		e.size--
	}
}
