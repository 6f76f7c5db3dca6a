// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// variants_platonic.go — canonical shells of the five Platonic solids and
// the Petersen graph, as local edge lists sorted by (U,V).
//
// Vertex cover numbers (useful as test oracles):
//   - Tetrahedron 3, Cube 4, Octahedron 4, Dodecahedron 12, Icosahedron 9,
//     Petersen 6.

package builder

// chord is a local edge inside a fixed-size block.
type chord struct{ U, V int }

// PlatonicName selects one of the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String implements fmt.Stringer.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// petersenChords: outer 5-cycle 0..4, spokes i-i+5, inner pentagram 5..9.
var petersenChords = []chord{
	{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 5},
	{U: 1, V: 2}, {U: 1, V: 6},
	{U: 2, V: 3}, {U: 2, V: 7},
	{U: 3, V: 4}, {U: 3, V: 8},
	{U: 4, V: 9},
	{U: 5, V: 7}, {U: 5, V: 8},
	{U: 6, V: 8}, {U: 6, V: 9},
	{U: 7, V: 9},
}

// platonicEdgeSets holds each shell with U<V, sorted by (U,V).
//
// Labelings:
//   - Cube: bottom face 0-1-2-3, top face 4-5-6-7, verticals i-i+4.
//   - Octahedron: poles 0 and 1, equator 2..5 with 2-4, 2-5, 3-4, 3-5.
//   - Dodecahedron: pentagon 0..4, ring 10..19, pentagon 5..9; the first
//     pentagon spokes to even ring slots, the second to odd ones.
//   - Icosahedron: pole 0, ring 1..5, ring 6..10, pole 11; ring vertex i
//     meets i+5 and the next slot of the lower ring.
var platonicEdgeSets = map[PlatonicName][]chord{
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},
	Cube: {
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4},
		{U: 1, V: 2}, {U: 1, V: 5},
		{U: 2, V: 3}, {U: 2, V: 6},
		{U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7},
		{U: 5, V: 6},
		{U: 6, V: 7},
	},
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5},
		{U: 3, V: 4}, {U: 3, V: 5},
	},
	Dodecahedron: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 10},
		{U: 1, V: 2}, {U: 1, V: 12},
		{U: 2, V: 3}, {U: 2, V: 14},
		{U: 3, V: 4}, {U: 3, V: 16},
		{U: 4, V: 18},
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 5, V: 11},
		{U: 6, V: 7}, {U: 6, V: 13},
		{U: 7, V: 8}, {U: 7, V: 15},
		{U: 8, V: 9}, {U: 8, V: 17},
		{U: 9, V: 19},
		{U: 10, V: 11}, {U: 10, V: 19},
		{U: 11, V: 12}, {U: 12, V: 13}, {U: 13, V: 14}, {U: 14, V: 15},
		{U: 15, V: 16}, {U: 16, V: 17}, {U: 17, V: 18}, {U: 18, V: 19},
	},
	Icosahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 7},
		{U: 2, V: 3}, {U: 2, V: 7}, {U: 2, V: 8},
		{U: 3, V: 4}, {U: 3, V: 8}, {U: 3, V: 9},
		{U: 4, V: 5}, {U: 4, V: 9}, {U: 4, V: 10},
		{U: 5, V: 6}, {U: 5, V: 10},
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 6, V: 11},
		{U: 7, V: 8}, {U: 7, V: 11},
		{U: 8, V: 9}, {U: 8, V: 11},
		{U: 9, V: 10}, {U: 9, V: 11},
		{U: 10, V: 11},
	},
}
