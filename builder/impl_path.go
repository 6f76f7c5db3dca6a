// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_path.go — Path(n): P_n with edges i-i+1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local vertices 0..n-1; edges emitted for i asc.
//
// Complexity: O(n). τ(P_n) = ⌊n/2⌋.

package builder

// Path returns a Constructor that appends a simple path on n vertices.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := d.block(n)
		for i := 0; i+1 < n; i++ {
			d.link(base+i, base+i+1)
		}

		return nil
	}
}
