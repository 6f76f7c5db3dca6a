// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_star.go — Star(n): center plus n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local vertex 0 is the center; leaves are 1..n-1, linked in ascending order.
//
// Complexity: O(n). τ = 1; the 2-approximation returns 2.

package builder

// Star returns a Constructor that appends a star K_{1,n-1}.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		center := d.block(n)
		for i := 1; i < n; i++ {
			d.link(center, center+i)
		}

		return nil
	}
}
