// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// constants.go — method tags and parameter minima shared by constructors.

package builder

// Method tags prefix every constructor error.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodBarabasiAlbert    = "BarabasiAlbert"
	MethodWattsStrogatz     = "WattsStrogatz"
)

// Minimum sizes per topology.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4 // outer cycle has n-1 ≥ 3 vertices
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
	MinRandomNodes   = 1
)

// Probability domain for stochastic constructors.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
