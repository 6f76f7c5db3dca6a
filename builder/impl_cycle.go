// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_cycle.go — Cycle(n): C_n with edges i-(i+1) mod n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); smaller rings would need loops or
//     parallel edges.
//   • Local vertices 0..n-1; ring edges for i asc, closing edge last.
//
// Complexity: O(n). τ(C_n) = ⌈n/2⌉.

package builder

// Cycle returns a Constructor that appends a simple cycle on n vertices.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := d.block(n)
		appendRing(d, base, n)

		return nil
	}
}

// appendRing links base+i to base+(i+1)%n for every i.
func appendRing(d *draft, base, n int) {
	for i := 0; i < n; i++ {
		d.link(base+i, base+(i+1)%n)
	}
}
