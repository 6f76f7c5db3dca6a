// SPDX-License-Identifier: MIT
// Package vcover - Backtrack (exact DFS with upper-bound pruning).
//
// Algorithm:
//  1. The incumbent starts as the approximation cover (or the trivial cover
//     without seeding, or an explicit inclusive bound).
//  2. At each node the cursor advances to the first edge not covered by the
//     partial cover; if none is left the partial cover is a new incumbent.
//  3. Otherwise branch on u then v of that edge, since every cover contains
//     one of them.
//  4. Prune when |partial| ≥ best, and when |partial|+1 ≥ best with edges left.
//
// Goals:
//   - Single-owner state: btSearch holds the incumbent; nothing is global.
//   - Sharing: the partial cover is a persistent map, so a child shares
//     structure with its parent and the incumbent is kept by reference.
//   - Determinism: branching order is fixed by the canonical edge order.
//
// Complexity:
//   - Time: O(2^OPT · m) in the worst case.
//   - Memory: O(OPT · log n) live map nodes plus O(OPT) recursion depth.

package vcover

import (
	"context"
	"fmt"
	"sort"

	"github.com/benbjohnson/immutable"

	"github.com/katalvlaran/lvcover/core"
)

// Backtrack returns a minimum cover found by exhaustive search.
func Backtrack(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, Backtracking, opts...)
}

// vertexSet is a persistent set of vertex ids.
type vertexSet = immutable.Map[int, struct{}]

// btSearch owns all mutable state of one backtracking run.
type btSearch struct {
	// Input (read-only)
	edges []core.Edge // canonical edge order drives the branching
	b     *budget

	// Incumbent (UB)
	bestSize int
	best     *vertexSet // nil while only the explicit bound is known

	// Counters
	nodes  int64
	pruned int64
}

func backtrack(b *budget, g *core.Graph, o Options) (Result, error) {
	s := &btSearch{edges: g.EdgesUnsafe(), b: b}

	// Seed the incumbent so pruning is effective from the root.
	empty := immutable.NewMap[int, struct{}](immutable.NewHasher(0))
	seed := empty
	for _, v := range initialIncumbent(g, o) {
		seed = seed.Set(v, struct{}{})
	}
	s.best, s.bestSize = seed, seed.Len()
	if o.UpperBound != NoUpperBound && o.UpperBound < s.bestSize {
		// The bound is inclusive: search for covers of size ≤ UpperBound.
		s.best, s.bestSize = nil, o.UpperBound+1
	}

	s.search(empty, 0)

	// Report the incumbent even when the budget stopped the search.
	res := Result{Stats: Stats{Nodes: s.nodes, Pruned: s.pruned}}
	if s.best != nil {
		res.Cover = setToCover(s.best)
	}
	if b.err != nil {
		return res, b.err
	}
	if s.best == nil {
		return res, fmt.Errorf("Backtrack: k=%d: %w", o.UpperBound, ErrBoundTooTight)
	}
	res.Optimal = true

	return res, nil
}

// search explores the subtree rooted at partial; edges before from are covered.
func (s *btSearch) search(partial *vertexSet, from int) {
	if s.b.exceeded() {
		return
	}
	s.nodes++

	// Bound: a partial cover as large as the incumbent cannot improve it.
	size := partial.Len()
	if size >= s.bestSize {
		s.pruned++
		return
	}

	// Every edge covered: strictly better incumbent.
	i := s.nextUncovered(partial, from)
	if i == len(s.edges) {
		s.best, s.bestSize = partial, size
		return
	}
	// At least one more vertex is needed.
	if size+1 >= s.bestSize {
		s.pruned++
		return
	}

	// Branch: every cover contains u or v.
	e := s.edges[i]
	s.search(partial.Set(e.U, struct{}{}), i+1)
	s.search(partial.Set(e.V, struct{}{}), i+1)
}

// nextUncovered returns the first index ≥ from whose edge has no endpoint in
// partial, or len(edges).
func (s *btSearch) nextUncovered(partial *vertexSet, from int) int {
	for i := from; i < len(s.edges); i++ {
		_, okU := partial.Get(s.edges[i].U)
		_, okV := partial.Get(s.edges[i].V)
		if !okU && !okV {
			return i
		}
	}

	return len(s.edges)
}

// setToCover returns the ids of m in ascending order.
func setToCover(m *vertexSet) Cover {
	out := make(Cover, 0, m.Len())
	itr := m.Iterator()
	for !itr.Done() {
		v, _, _ := itr.Next()
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
