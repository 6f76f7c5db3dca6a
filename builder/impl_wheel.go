// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_wheel.go — Wheel(n): W_n = C_{n-1} + hub.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices) so the rim is a valid cycle.
//   • Local vertices 0..n-2 form the rim (same order as Cycle); n-1 is the hub.
//   • Rim edges first, then spokes by increasing rim index.
//
// Complexity: O(n). τ(W_n) = ⌈(n-1)/2⌉ + 1.

package builder

// Wheel returns a Constructor that appends a wheel on n vertices.
func Wheel(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		base := d.block(n)
		appendRing(d, base, n-1)
		hub := base + n - 1
		for i := 0; i < n-1; i++ {
			d.link(hub, base+i)
		}

		return nil
	}
}
