// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs cons in order,
//     then validates the accumulated edge list once through core.NewGraph.
//   - Each constructor appends a fresh block of vertices; composing several constructors
//     yields their disjoint union, block after block, in call order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Constructor appends one vertex block and its edges to the draft using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit only simple edges inside their own block.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before core.NewGraph freezes them.
type draft struct {
	n     int
	edges []core.Edge
}

// block reserves k consecutive vertex ids and returns the first one.
func (d *draft) block(k int) int {
	base := d.n
	d.n += k

	return base
}

// link records the undirected edge {u,v}.
func (d *draft) link(u, v int) {
	d.edges = append(d.edges, core.Edge{U: u, V: v})
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting immutable graph, built
// with core graph options gopts.
//
// Errors:
//   - Constructor errors are wrapped with "BuildGraph: %w"; branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - A nil constructor or an edge list rejected by core.NewGraph yields
//     ErrConstructFailed (the core error stays in the chain).
//
// Complexity: Σ cost of each constructor + O(n + m log m) for core.NewGraph.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.n, d.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// MustBuildGraph is BuildGraph for fixtures; it panics on error.
func MustBuildGraph(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), CompleteBipartite(n1, n2),
// Grid(rows, cols), PlatonicSolid(name), Petersen() are deterministic.
//
// RandomSparse(n, p), RandomRegular(n, d), BarabasiAlbert(n, m),
// WattsStrogatz(n, k, p) require an RNG (WithSeed / WithRand) and are
// deterministic for a fixed seed.
