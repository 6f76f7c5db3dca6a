// SPDX-License-Identifier: MIT

// Package core provides the immutable, undirected, simple Graph consumed by
// every lvcover solver.
//
// Vertices are dense integers 0..n-1. Edges are unordered pairs stored in a
// canonical form Edge{U, V} with U < V, sorted lexicographically and indexed
// 0..m-1. The edge index is the stable handle solvers use for bitsets, memo
// keys and counters.
//
// A Graph is validated once, in NewGraph, and never changes afterwards:
//
//   - Every edge references two existing vertices (else ErrVertexOutOfRange).
//   - No self-loops (else ErrSelfLoop).
//   - No duplicate pairs (else ErrDuplicateEdge, unless WithMergeDuplicates()).
//
// All three failures are reported as *InvalidGraphError, which matches
// ErrInvalidGraph via errors.Is and unwraps to the specific sentinel.
//
// Because the structure is read-only after construction, a *Graph may be
// shared freely between goroutines; no locks are taken on any query.
//
// Quick example:
//
//	    0───1
//	    │ ╲ │
//	    3   2
//
//	g, err := core.NewGraph(4, []core.Edge{{0, 1}, {1, 2}, {0, 2}, {0, 3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Order(), g.Size(), g.Degree(0)) // 4 4 3
//
// Complexity summary:
//
//	NewGraph        O(n + m log m)
//	Neighbors(v)    O(deg v) (copy)
//	HasEdge(u,v)    O(log deg u)
//	Components()    O(n + m·α(n))
//	Induced(vs)     O(|vs| + m)
package core
