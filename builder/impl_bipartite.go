// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Local vertices 0..n1-1 form the left side, n1..n1+n2-1 the right side.
//   • Edges emitted for (left asc, right asc).
//
// Complexity: O(n1·n2). By Kőnig's theorem τ(K_{n1,n2}) = min(n1, n2).

package builder

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return builderErrorf(MethodCompleteBipartite, ErrTooFewVertices,
				"partition sizes must be ≥ %d, got %d and %d", MinPartition, n1, n2)
		}
		base := d.block(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.link(base+i, base+n1+j)
			}
		}

		return nil
	}
}
