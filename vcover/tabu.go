// SPDX-License-Identifier: MIT
// Package vcover - TabuSearch (flip-move local search with a tabu list).
//
// Objective:
//
//	cost(C) = P·uncovered(C) + |C|,  P = clamp(max(Options.Penalty, n+1))
//
// With P > n every infeasible state costs more than every feasible one.
// P is additionally capped at MaxInt/(Δ+2) so P·deg(v) can never overflow;
// the cap is still > n for every graph that fits in memory.
//
// Goals:
//   - Each iteration evaluates all n flips in O(1) each using two counters:
//     free[v] = edges at v with both endpoints outside C (meaningful for v ∉ C),
//     solo[v] = edges at v covered by v alone (meaningful for v ∈ C).
//     Adding v changes cost by 1 − P·free[v]; removing v by −1 + P·solo[v].
//   - Tabu list: a map vertex → remaining iterations. A flipped vertex is
//     forbidden for exactly Tenure subsequent iterations; counters are
//     decremented once per iteration and removed at zero.
//   - Aspiration: a forbidden flip is admitted when it yields a feasible
//     cover strictly smaller than the best one.
//   - Determinism: ties between equally good moves are broken by reservoir
//     sampling on the seeded RNG, so a fixed seed reproduces the run exactly.
//
// Termination: MaxIterations, StagnationLimit iterations without a new best,
// the time limit, or no admissible move. The best feasible cover is returned.
//
// Complexity:
//   - Time: O(n + deg(move) + tenure) per iteration.
//   - Memory: O(n + tenure).

package vcover

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvcover/core"
)

// TabuSearch returns the best cover found by tabu search. It never claims
// optimality.
func TabuSearch(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, Tabu, opts...)
}

// tabuState is the current (possibly infeasible) vertex set with the
// incremental counters needed for O(1) move evaluation.
type tabuState struct {
	g         *core.Graph
	in        []bool // membership mask of the current set
	free      []int  // free[v]: uncovered edges at v (v ∉ C)
	solo      []int  // solo[v]: edges covered only by v (v ∈ C)
	size      int    // |C|
	uncovered int    // edges with no endpoint in C
}

func newTabuState(g *core.Graph, start []bool) *tabuState {
	n := g.Order()
	t := &tabuState{
		g:    g,
		in:   start,
		free: make([]int, n),
		solo: make([]int, n),
	}
	for _, in := range start {
		if in {
			t.size++
		}
	}
	// Classify every edge once by how many endpoints are in C.
	for _, e := range g.EdgesUnsafe() {
		switch inU, inV := t.in[e.U], t.in[e.V]; {
		case !inU && !inV:
			t.uncovered++
			t.free[e.U]++
			t.free[e.V]++
		case inU && !inV:
			t.solo[e.U]++
		case !inU && inV:
			t.solo[e.V]++
		}
	}

	return t
}

// delta returns the cost change and the resulting (size, uncovered) of flipping v.
func (t *tabuState) delta(v, penalty int) (int, int, int) {
	if t.in[v] {
		return -1 + penalty*t.solo[v], t.size - 1, t.uncovered + t.solo[v]
	}

	return 1 - penalty*t.free[v], t.size + 1, t.uncovered - t.free[v]
}

// flip toggles v and patches the counters of v and its neighbours.
func (t *tabuState) flip(v int) {
	if t.in[v] {
		// Removal: edges v–w with w ∉ C become uncovered, edges with w ∈ C
		// are now covered by w alone.
		for _, w := range t.g.NeighborsUnsafe(v) {
			if t.in[w] {
				t.solo[w]++
			} else {
				t.uncovered++
				t.free[w]++
				t.free[v]++
			}
		}
		t.solo[v] = 0
		t.in[v] = false
		t.size--
		return
	}

	// Insertion: the mirror image.
	for _, w := range t.g.NeighborsUnsafe(v) {
		if t.in[w] {
			t.solo[w]--
		} else {
			t.uncovered--
			t.free[w]--
			t.solo[v]++
		}
	}
	t.free[v] = 0
	t.in[v] = true
	t.size++
}

// effectivePenalty raises p to n+1 and caps it so that p·deg never overflows.
func effectivePenalty(p, n, maxDeg int) int {
	if p <= n {
		p = n + 1
	}
	if limit := math.MaxInt / (maxDeg + 2); p > limit {
		p = limit
	}

	return p
}

// tabuSearcher owns one run: the current state, the tabu list and the best
// feasible cover seen so far.
type tabuSearcher struct {
	st      *tabuState
	penalty int        // effective P, see effectivePenalty
	tenure  int        // iterations a flipped vertex stays forbidden
	rng     *rand.Rand // tie-breaking only

	// tabu maps a recently flipped vertex to the iterations it stays forbidden.
	tabu map[int]int

	// Best feasible cover (UB)
	best     []bool
	bestSize int
}

// newTabuSearcher starts from the mask start. An infeasible start falls back
// to the all-vertices cover as the initial best.
func newTabuSearcher(g *core.Graph, start []bool, o Options) *tabuSearcher {
	n := g.Order()
	s := &tabuSearcher{
		st:      newTabuState(g, start),
		penalty: effectivePenalty(o.Penalty, n, g.MaxDegree()),
		tenure:  o.TabuTenure,
		rng:     rngFromSeed(o.Seed),
		tabu:    make(map[int]int, o.TabuTenure+1),
		best:    make([]bool, n),
	}
	if s.st.uncovered == 0 {
		copy(s.best, s.st.in)
		s.bestSize = s.st.size
	} else {
		for v := range s.best {
			s.best[v] = true
		}
		s.bestSize = n
	}

	return s
}

// admissible reports whether flipping v may be chosen: v is not tabu, or the
// flip reaches a feasible cover smaller than the best (aspiration).
func (s *tabuSearcher) admissible(v, size, uncovered int) bool {
	if _, forbidden := s.tabu[v]; !forbidden {
		return true
	}

	return uncovered == 0 && size < s.bestSize
}

// age decrements every tabu counter and drops the ones that reach zero.
func (s *tabuSearcher) age() {
	for v, left := range s.tabu {
		if left <= 1 {
			delete(s.tabu, v)
		} else {
			s.tabu[v] = left - 1
		}
	}
}

// step performs one iteration: pick the best admissible flip, age the tabu
// list, apply the flip and make it tabu. It returns the flipped vertex (−1
// when nothing is admissible) and whether a new best cover was recorded.
func (s *tabuSearcher) step() (int, bool) {
	n := s.st.g.Order()
	move, bestDelta, ties := -1, math.MaxInt, 0
	for v := 0; v < n; v++ {
		d, size, unc := s.st.delta(v, s.penalty)
		if !s.admissible(v, size, unc) {
			continue
		}
		switch {
		case d < bestDelta:
			move, bestDelta, ties = v, d, 1
		case d == bestDelta:
			// Reservoir sampling: each of the k tied moves wins with 1/k.
			ties++
			if s.rng.Intn(ties) == 0 {
				move = v
			}
		}
	}
	if move < 0 {
		return -1, false
	}

	// Aging before insertion keeps the new entry at the full tenure.
	s.age()
	s.st.flip(move)
	s.tabu[move] = s.tenure

	if s.st.uncovered == 0 && s.st.size < s.bestSize {
		copy(s.best, s.st.in)
		s.bestSize = s.st.size
		return move, true
	}

	return move, false
}

// tabuSearch drives a tabuSearcher until a stop rule fires.
func tabuSearch(b *budget, g *core.Graph, o Options) (Result, error) {
	n := g.Order()
	if g.Size() == 0 {
		return Result{Cover: Cover{}}, nil
	}

	// Initial solution: the 2-approximation or every vertex.
	var start []bool
	switch o.TabuStart {
	case StartFull:
		start = make([]bool, n)
		for v := range start {
			start[v] = true
		}
	default:
		start = approxMask(g)
	}
	s := newTabuSearcher(g, start, o)

	var (
		it       int
		stagnant int
		runErr   error
	)
	for it = 0; it < o.MaxIterations; it++ {
		// The time limit is a normal stop for a heuristic; cancellation is not.
		if b.exceeded() {
			if !errors.Is(b.err, ErrTimeLimit) {
				runErr = b.err
			}
			break
		}

		move, improved := s.step()
		if move < 0 {
			break
		}
		if improved {
			stagnant = 0
		} else {
			stagnant++
		}
		if o.StagnationLimit > 0 && stagnant >= o.StagnationLimit {
			it++
			break
		}
	}

	return Result{Cover: coverFromMask(s.best), Stats: Stats{Iterations: it}}, runErr
}
