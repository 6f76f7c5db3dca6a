// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is local vertex r*cols + c (row-major).
//   • For each cell in row-major order emit Right then Bottom when present.
//
// Complexity: O(rows·cols). Grids are bipartite, so τ equals the maximum
// matching size (⌊rows·cols/2⌋).

package builder

// Grid returns a Constructor that appends a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, ErrTooFewVertices,
				"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
		}
		base := d.block(rows * cols)
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					d.link(u, u+1)
				}
				if r+1 < rows {
					d.link(u, u+cols)
				}
			}
		}

		return nil
	}
}
