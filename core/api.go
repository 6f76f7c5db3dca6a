// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph construction. Validation happens here and nowhere else; every
//       query in methods.go may assume the invariants listed in doc.go.

package core

import (
	"fmt"
	"sort"
)

// NewGraph validates edges against the vertex range 0..n-1 and builds an
// immutable Graph.
//
// Implementation:
//   - Stage 1: Reject n < 0 (ErrNegativeOrder).
//   - Stage 2: Normalize every pair to U < V; reject out-of-range ids and loops.
//   - Stage 3: Sort canonically and reject (or merge) duplicate pairs.
//   - Stage 4: Build sorted adjacency and aligned incident-edge lists.
//
// Errors:
//   - ErrNegativeOrder.
//   - *InvalidGraphError wrapping ErrVertexOutOfRange, ErrSelfLoop or ErrDuplicateEdge.
//
// Complexity:
//   - Time O(n + m log m), Space O(n + m).
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeOrder)
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 2: normalize and range-check; keep the caller index for error reports.
	type indexed struct {
		e   Edge
		pos int
	}
	var (
		buf = make([]indexed, 0, len(edges))
		i   int
		e   Edge
	)
	for i, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, &InvalidGraphError{Index: i, Edge: e, Err: ErrVertexOutOfRange}
		}
		if e.U == e.V {
			return nil, &InvalidGraphError{Index: i, Edge: e, Err: ErrSelfLoop}
		}
		buf = append(buf, indexed{e: e.Normalize(), pos: i})
	}

	// Stage 3: canonical order; stable so the first occurrence survives a merge.
	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].e.U != buf[b].e.U {
			return buf[a].e.U < buf[b].e.U
		}
		return buf[a].e.V < buf[b].e.V
	})
	canon := make([]Edge, 0, len(buf))
	for i = range buf {
		if len(canon) > 0 && canon[len(canon)-1] == buf[i].e {
			if cfg.mergeDuplicates {
				continue
			}
			return nil, &InvalidGraphError{Index: buf[i].pos, Edge: edges[buf[i].pos], Err: ErrDuplicateEdge}
		}
		canon = append(canon, buf[i].e)
	}

	return build(n, canon), nil
}

// MustNewGraph is NewGraph that panics on error. Intended for fixtures and
// examples where the edge list is a literal.
func MustNewGraph(n int, edges []Edge, opts ...GraphOption) *Graph {
	g, err := NewGraph(n, edges, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// build assembles adjacency from edges that are already canonical and valid.
func build(n int, canon []Edge) *Graph {
	g := &Graph{
		n:     n,
		edges: canon,
		adj:   make([][]int, n),
		inc:   make([][]int, n),
	}

	deg := make([]int, n)
	for _, e := range canon {
		deg[e.U]++
		deg[e.V]++
	}
	var v int
	for v = 0; v < n; v++ {
		g.adj[v] = make([]int, 0, deg[v])
		g.inc[v] = make([]int, 0, deg[v])
		if deg[v] > g.maxD {
			g.maxD = deg[v]
		}
	}

	// Canonical edge order already yields sorted neighbor lists for the U side
	// (V ascending) but not for the V side, so sort each list afterwards.
	for idx, e := range canon {
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.inc[e.U] = append(g.inc[e.U], idx)
		g.adj[e.V] = append(g.adj[e.V], e.U)
		g.inc[e.V] = append(g.inc[e.V], idx)
	}
	for v = 0; v < n; v++ {
		sort.Sort(adjacencyOrder{nbr: g.adj[v], inc: g.inc[v]})
	}

	return g
}

// adjacencyOrder sorts a neighbor list and keeps the incident-edge list aligned.
type adjacencyOrder struct {
	nbr []int
	inc []int
}

func (a adjacencyOrder) Len() int           { return len(a.nbr) }
func (a adjacencyOrder) Less(i, j int) bool { return a.nbr[i] < a.nbr[j] }
func (a adjacencyOrder) Swap(i, j int) {
	a.nbr[i], a.nbr[j] = a.nbr[j], a.nbr[i]
	a.inc[i], a.inc[j] = a.inc[j], a.inc[i]
}
