// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries. Slices handed to callers are copies; the *Unsafe
//       accessors expose internal storage to hot loops inside this module and
//       must never be modified.

package core

import "sort"

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges m.
func (g *Graph) Size() int { return len(g.edges) }

// HasVertex reports whether 0 ≤ v < n.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Edges returns a copy of the canonical edge list (U < V, lexicographic).
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge with canonical index i. Panics when i is out of range,
// like a slice index.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// EdgesUnsafe exposes the internal canonical edge slice. Callers must treat
// it as read-only.
func (g *Graph) EdgesUnsafe() []Edge { return g.edges }

// Degree returns the number of edges incident to v, or 0 for an unknown vertex.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// MaxDegree returns Δ(G); 0 for an edgeless graph.
func (g *Graph) MaxDegree() int { return g.maxD }

// Neighbors returns the sorted neighbor ids of v (copy). Unknown vertices
// yield nil.
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// NeighborsUnsafe exposes the sorted neighbor list of v without copying.
func (g *Graph) NeighborsUnsafe(v int) []int { return g.adj[v] }

// IncidentEdges returns the canonical indices of edges touching v (copy),
// aligned with Neighbors(v).
func (g *Graph) IncidentEdges(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	out := make([]int, len(g.inc[v]))
	copy(out, g.inc[v])

	return out
}

// IncidentEdgesUnsafe exposes the incident edge indices of v without copying.
func (g *Graph) IncidentEdgesUnsafe(v int) []int { return g.inc[v] }

// EdgeIndex returns the canonical index of edge {u,v} and true, or (-1,false)
// when the pair is not an edge.
// Complexity: O(log deg u).
func (g *Graph) EdgeIndex(u, v int) (int, bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) || u == v {
		return -1, false
	}
	nb := g.adj[u]
	i := sort.SearchInts(nb, v)
	if i < len(nb) && nb[i] == v {
		return g.inc[u][i], true
	}

	return -1, false
}

// HasEdge reports whether {u,v} is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.EdgeIndex(u, v)

	return ok
}

// IsCover reports whether every edge has at least one endpoint in vs.
// Ids outside 0..n-1 are ignored.
// Complexity: O(n + m).
func (g *Graph) IsCover(vs []int) bool {
	mask := make([]bool, g.n)
	for _, v := range vs {
		if g.HasVertex(v) {
			mask[v] = true
		}
	}

	return g.Uncovered(mask) == 0
}

// Uncovered counts edges with neither endpoint set in mask. mask must have
// length n.
// Complexity: O(m).
func (g *Graph) Uncovered(mask []bool) int {
	var cnt int
	for _, e := range g.edges {
		if !mask[e.U] && !mask[e.V] {
			cnt++
		}
	}

	return cnt
}

// NonIsolated returns, in ascending order, every vertex with degree ≥ 1.
// This set is always a vertex cover.
func (g *Graph) NonIsolated() []int {
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if len(g.adj[v]) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// Stats summarizes the graph in one O(n) pass.
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: g.n, Edges: len(g.edges), MaxDegree: g.maxD}
	if g.n == 0 {
		return s
	}
	s.MinDegree = len(g.adj[0])
	for v := 0; v < g.n; v++ {
		d := len(g.adj[v])
		if d == 0 {
			s.Isolated++
		}
		if d < s.MinDegree {
			s.MinDegree = d
		}
	}
	if g.n > 1 {
		s.Density = 2 * float64(len(g.edges)) / (float64(g.n) * float64(g.n-1))
	}

	return s
}
