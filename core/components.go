// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components (union-find) and induced subgraphs. Together they
//       let solvers work on each component independently: the minimum cover of
//       a graph is the union of the minimum covers of its components.

package core

import (
	"fmt"
	"sort"

	uf "github.com/spakin/disjoint"
)

// Components returns the connected components that contain at least one edge.
// Isolated vertices are omitted since they never belong to a minimum cover.
//
// Determinism:
//   - Vertices inside a component are ascending.
//   - Components are ordered by their smallest vertex.
//
// Complexity: O(n + m·α(n)) time, O(n) space.
func (g *Graph) Components() [][]int {
	elems := make([]*uf.Element, g.n)
	var v int
	for v = 0; v < g.n; v++ {
		if len(g.adj[v]) > 0 {
			elems[v] = uf.NewElement()
			elems[v].Data = v
		}
	}
	for _, e := range g.edges {
		uf.Union(elems[e.U], elems[e.V])
	}

	byRoot := make(map[*uf.Element]int)
	var comps [][]int
	for v = 0; v < g.n; v++ {
		if elems[v] == nil {
			continue
		}
		root := elems[v].Find()
		idx, ok := byRoot[root]
		if !ok {
			idx = len(comps)
			byRoot[root] = idx
			comps = append(comps, nil)
		}
		// v ascends, so every component stays sorted and the first vertex seen
		// fixes the component order.
		comps[idx] = append(comps[idx], v)
	}

	return comps
}

// Induced returns the subgraph induced by vertices, relabelled densely in the
// order given, together with the mapping local id → parent id.
//
// Errors:
//   - ErrVertexOutOfRange if an id is not a vertex of g.
//   - ErrDuplicateEdge (wrapped) if an id is listed twice.
//
// Complexity: O(|vertices| + Σ deg) time.
func (g *Graph) Induced(vertices []int) (*Graph, []int, error) {
	local := make(map[int]int, len(vertices))
	mapping := make([]int, len(vertices))
	for i, v := range vertices {
		if !g.HasVertex(v) {
			return nil, nil, fmt.Errorf("Induced: vertex %d: %w", v, ErrVertexOutOfRange)
		}
		if _, dup := local[v]; dup {
			return nil, nil, fmt.Errorf("Induced: vertex %d listed twice: %w", v, ErrDuplicateEdge)
		}
		local[v] = i
		mapping[i] = v
	}

	var edges []Edge
	for i, v := range vertices {
		for _, w := range g.adj[v] {
			j, ok := local[w]
			if !ok || w < v {
				continue
			}
			edges = append(edges, Edge{U: i, V: j}.Normalize())
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}
		return edges[a].V < edges[b].V
	})

	return build(len(vertices), edges), mapping, nil
}
