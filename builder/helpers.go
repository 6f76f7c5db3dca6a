// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// helpers.go — small edge-emission helpers shared by constructors.

package builder

// addClique links every pair of ids in ascending index order.
// Complexity: O(k²) for k ids.
func addClique(d *draft, ids []int) {
	var i, j int
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			d.link(ids[i], ids[j])
		}
	}
}

// span returns base, base+1, …, base+k-1.
func span(base, k int) []int {
	ids := make([]int, k)
	for i := range ids {
		ids[i] = base + i
	}

	return ids
}

// pairSet tracks simple edges between local indices while a random
// constructor is deciding which edges to emit.
type pairSet map[[2]int]struct{}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

func (s pairSet) has(u, v int) bool {
	_, ok := s[pairKey(u, v)]

	return ok
}

func (s pairSet) add(u, v int) { s[pairKey(u, v)] = struct{}{} }

func (s pairSet) remove(u, v int) { delete(s, pairKey(u, v)) }
