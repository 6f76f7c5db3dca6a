// SPDX-License-Identifier: MIT
// Package vcover - lower bound for BranchAndBound from the bipartite double cover.
//
// The double cover B(G) has a left and a right copy of every vertex and joins
// left u to right w for each edge {u,w} (both directions). Its maximum matching
// μ₂ equals twice the fractional matching number of G, which never exceeds the
// vertex cover number, so ⌈μ₂/2⌉ is a valid lower bound.
//
// Algorithm:
//  1. Greedy matching over residual vertices.
//  2. For every free left vertex grow a BFS forest, alternating non-matching
//     and matching edges (unit capacities).
//  3. Flip the first path that reaches a free right vertex.
//
// Complexity:
//   - Time: O(V · E) per call.
//   - Memory: scratch buffers owned by bbSearch, reused across calls.

package vcover

// doubleCoverBound returns ⌈μ₂/2⌉ for the residual graph, i.e. the subgraph
// induced by vertices with in[v] == false. scratch buffers are reused across
// calls.
//
// Complexity: O(V · E) per call.
func (e *bbSearch) doubleCoverBound() int {
	n := len(e.in)
	matchL, matchR, parent := e.matchL, e.matchR, e.parent
	for v := 0; v < n; v++ {
		matchL[v], matchR[v] = -1, -1
	}

	// Greedy start; augmenting paths fix the rest.
	size := 0
	for u := 0; u < n; u++ {
		if e.in[u] || e.rdeg[u] == 0 {
			continue
		}
		for _, w := range e.g.NeighborsUnsafe(u) {
			if !e.in[w] && matchR[w] < 0 {
				matchL[u], matchR[w] = w, u
				size++
				break
			}
		}
	}

	queue := e.queue[:0]
	for root := 0; root < n; root++ {
		if e.in[root] || e.rdeg[root] == 0 || matchL[root] >= 0 {
			continue
		}
		// parent[w] = left vertex that reached right vertex w in this round.
		for v := 0; v < n; v++ {
			parent[v] = -1
		}
		queue = append(queue[:0], root)
		end := -1
		for head := 0; head < len(queue) && end < 0; head++ {
			u := queue[head]
			for _, w := range e.g.NeighborsUnsafe(u) {
				if e.in[w] || parent[w] >= 0 {
					continue
				}
				parent[w] = u
				if matchR[w] < 0 {
					end = w
					break
				}
				queue = append(queue, matchR[w])
			}
		}
		if end < 0 {
			continue
		}
		// Flip the alternating path back to root.
		for w := end; w >= 0; {
			u := parent[w]
			next := matchL[u]
			matchL[u], matchR[w] = w, u
			w = next
		}
		size++
	}
	e.queue = queue

	return (size + 1) / 2
}
