// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the InvalidGraphError type.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph is matched (errors.Is) by every *InvalidGraphError.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrNegativeOrder indicates NewGraph was called with n < 0.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex id outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the same unordered pair was supplied twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// InvalidGraphError reports the first offending edge found by NewGraph.
//
// Index is the position of the edge in the caller's input slice, Edge is the
// pair exactly as supplied, and Err is one of ErrVertexOutOfRange, ErrSelfLoop
// or ErrDuplicateEdge.
type InvalidGraphError struct {
	Index int
	Edge  Edge
	Err   error
}

func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("core: invalid edge #%d (%d,%d): %v", e.Index, e.Edge.U, e.Edge.V, e.Err)
}

// Unwrap exposes the specific sentinel.
func (e *InvalidGraphError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidGraph) succeed for every construction failure.
func (e *InvalidGraphError) Is(target error) bool { return target == ErrInvalidGraph }

// Edge is an undirected pair of vertex ids.
// Edges returned by a Graph always satisfy U < V.
type Edge struct {
	U int
	V int
}

// Normalize returns the pair with U < V (or unchanged when U == V).
func (e Edge) Normalize() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v int) bool { return e.U == v || e.V == v }

// Other returns the endpoint opposite to v. The result is undefined when
// v is not an endpoint of e.
func (e Edge) Other(v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}

// String renders the pair as "(u,v)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.U, e.V) }

// GraphOption configures NewGraph before validation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	mergeDuplicates bool
}

// WithMergeDuplicates collapses repeated or reversed pairs into one edge
// instead of failing with ErrDuplicateEdge. Edge-list files that record both
// (u,v) and (v,u) need it.
func WithMergeDuplicates() GraphOption {
	return func(c *graphConfig) { c.mergeDuplicates = true }
}

// Graph is an immutable undirected simple graph over vertices 0..n-1.
//
// adj[v] holds the sorted neighbor ids of v; inc[v] holds the indices of the
// edges incident to v, aligned with adj[v] (inc[v][i] joins v and adj[v][i]).
type Graph struct {
	n     int
	edges []Edge  // canonical order, U < V
	adj   [][]int // sorted neighbors
	inc   [][]int // incident edge indices aligned with adj
	maxD  int     // maximum degree
}

// Stats is a cheap structural summary of a Graph.
type Stats struct {
	Vertices  int
	Edges     int
	Isolated  int
	MaxDegree int
	MinDegree int
	Density   float64 // 2m / (n(n-1)); 0 when n < 2
}
