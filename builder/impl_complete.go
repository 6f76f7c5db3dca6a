// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_complete.go — Complete(n): K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   • Edges emitted for (i asc, j>i asc).
//
// Complexity: O(n²). τ(K_n) = n-1.

package builder

// Complete returns a Constructor that appends the complete graph on n vertices.
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		addClique(d, span(d.block(n), n))

		return nil
	}
}
