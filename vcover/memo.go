// SPDX-License-Identifier: MIT
// Package vcover - Memoize (exact recursion over remaining edge sets).
//
//	solve(R) = 0                                          if R = ∅
//	solve(R) = 1 + min(solve(R∖inc(u)), solve(R∖inc(v)))  for the lowest edge (u,v) ∈ R
//
// Goals:
//   - Canonical key: the bitset of R (see bitset.go), independent of the
//     branch order that reached it.
//   - Compact cache: each state stores only the optimal residual size and the
//     vertex that achieved it; the witness is rebuilt afterwards by replaying
//     those choices from the full edge set.
//   - Tie-break: the branch edge is always the lowest index in canonical
//     (U,V) order; on equal sizes u wins over v.
//
// Complexity:
//   - Time: exponential in the worst case; each state costs O(m/64) to key.
//   - Memory: one cache entry per distinct residual edge set.

package vcover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Memoize returns a minimum cover using the memoized recursion.
func Memoize(g *core.Graph, opts ...Option) (Result, error) {
	return Solve(context.Background(), g, Memoized, opts...)
}

// memoEntry is the cached answer for one residual edge set.
type memoEntry struct {
	size int32 // optimal cover size of the residual set
	pick int32 // vertex chosen at this state, for replay
}

// memoSearch owns the cache and counters of one run.
type memoSearch struct {
	g     *core.Graph
	edges []core.Edge
	b     *budget
	cache map[string]memoEntry // edgeSet.key() → entry

	hits   int64
	nodes  int64
	failed bool // budget exceeded; partial results are meaningless
}

func memoize(b *budget, g *core.Graph, o Options) (Result, error) {
	s := &memoSearch{
		g:     g,
		edges: g.EdgesUnsafe(),
		b:     b,
		cache: make(map[string]memoEntry),
	}

	full := newFullEdgeSet(len(s.edges))
	opt := s.solve(full)
	stats := Stats{Nodes: s.nodes, CacheHits: s.hits, CacheEntries: len(s.cache)}
	if s.failed {
		return Result{Stats: stats}, b.err
	}
	if o.UpperBound != NoUpperBound && opt > o.UpperBound {
		return Result{Stats: stats}, fmt.Errorf("Memoize: optimum %d > k=%d: %w", opt, o.UpperBound, ErrBoundTooTight)
	}

	// Rebuild the witness from the stored picks.
	cover := s.replay(full)
	if len(cover) != opt {
		panic(fmt.Sprintf("vcover: memo replay produced %d vertices, optimum is %d", len(cover), opt))
	}

	return Result{Cover: cover, Optimal: true, Stats: stats}, nil
}

// solve returns the optimal cover size of the residual edge set rem.
func (s *memoSearch) solve(rem edgeSet) int {
	first := rem.first()
	if first < 0 {
		return 0
	}
	key := rem.key()
	if ent, ok := s.cache[key]; ok {
		s.hits++
		return int(ent.size)
	}
	if s.b.exceeded() {
		s.failed = true
		return 0
	}
	s.nodes++

	// Branch on the lowest remaining edge: take u, or take v.
	e := s.edges[first]
	withU := 1 + s.solve(rem.without(s.g.IncidentEdgesUnsafe(e.U)))
	if s.failed {
		return 0
	}
	withV := 1 + s.solve(rem.without(s.g.IncidentEdgesUnsafe(e.V)))
	if s.failed {
		return 0
	}

	ent := memoEntry{size: int32(withU), pick: int32(e.U)}
	if withV < withU {
		ent = memoEntry{size: int32(withV), pick: int32(e.V)}
	}
	s.cache[key] = ent

	return int(ent.size)
}

// replay follows the stored picks from rem down to the empty set.
func (s *memoSearch) replay(rem edgeSet) Cover {
	var picks []int
	for rem.first() >= 0 {
		ent := s.cache[rem.key()]
		picks = append(picks, int(ent.pick))
		rem = rem.without(s.g.IncidentEdgesUnsafe(int(ent.pick)))
	}

	return NewCover(picks...)
}
