// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_platonic.go — PlatonicSolid(name, withCenter) and Petersen().
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     unknown names → ErrOptionViolation.
//   • Shell vertices are local 0..V-1; shell edges are emitted in the
//     pre-sorted order of variants_platonic.go.
//   • withCenter appends a hub at local index V with spokes in index order.
//
// Complexity: O(V+E) with V ≤ 20, E ≤ 30.

package builder

// PlatonicSolid returns a Constructor that appends the chosen Platonic shell,
// optionally with a hub joined to every shell vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *draft, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrOptionViolation, "unknown solid %d", int(name))
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrConstructFailed, "missing edge set for %v", name)
		}

		size := n
		if withCenter {
			size++
		}
		base := d.block(size)
		emitChords(d, base, edges)
		if withCenter {
			hub := base + n
			for i := 0; i < n; i++ {
				d.link(hub, base+i)
			}
		}

		return nil
	}
}

// Petersen returns a Constructor that appends the Petersen graph (10 vertices,
// 15 edges, 3-regular, τ = 6).
func Petersen() Constructor {
	return func(d *draft, _ builderConfig) error {
		emitChords(d, d.block(10), petersenChords)

		return nil
	}
}

func emitChords(d *draft, base int, chords []chord) {
	for _, ch := range chords {
		d.link(base+ch.U, base+ch.V)
	}
}
