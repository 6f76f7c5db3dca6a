// SPDX-License-Identifier: MIT

// Package builder constructs core.Graph instances from composable,
// functional-options-style constructors.
//
// Each Constructor appends a fresh block of vertices and the edges inside
// it; BuildGraph runs constructors in call order and freezes the result once
// through core.NewGraph, so several constructors yield their disjoint union:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Petersen(), builder.Path(4))
//
// Deterministic topologies:
//
//   - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//   - CompleteBipartite(n1, n2), Grid(rows, cols)
//   - PlatonicSolid(name, withCenter), Petersen()
//
// Random models (need WithSeed or WithRand, reproducible for a fixed seed):
//
//   - RandomSparse(n, p): Erdős–Rényi G(n,p)
//   - RandomRegular(n, d): stub matching with bounded retries
//   - BarabasiAlbert(n, m): preferential attachment from an (m+1)-star
//   - WattsStrogatz(n, k, p): ring lattice with rewiring
//
// LookupGenerator resolves the model names used by the experiment harness
// and the command line ("erdos-renyi", "barabasi-albert", "watts-strogatz")
// to a Generator with fixed default parameters; DeriveSeed keys per-instance
// seeds on a base seed.
//
// Errors: constructors never panic. They return sentinels wrapped with method
// context (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrOptionViolation); option constructors panic on
// meaningless arguments such as WithRand(nil).
package builder
