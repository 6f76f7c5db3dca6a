// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"hash/fnv"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/core"
)

// maxRedraws bounds how often an edgeless instance is redrawn.
const maxRedraws = 1000

// task is one (generator, size, repetition) cell of the sweep.
type task struct {
	gen builder.Generator
	n   int
	rep int
}

// tasks lists the sweep in generator, size, repetition order.
func (c Config) tasks() ([]task, error) {
	out := make([]task, 0, len(c.Generators)*len(c.Sizes)*c.Repetitions)
	for _, name := range c.Generators {
		gen, err := builder.LookupGenerator(name)
		if err != nil {
			return nil, err
		}
		for _, n := range c.Sizes {
			for rep := 0; rep < c.Repetitions; rep++ {
				out = append(out, task{gen: gen, n: n, rep: rep})
			}
		}
	}

	return out, nil
}

// InstanceSeed derives the seed of one sweep cell. It depends on the
// generator name rather than its position so reordering generators keeps
// every instance.
func InstanceSeed(base int64, generator string, n, rep int) int64 {
	h := fnv.New64a()
	h.Write([]byte(generator))
	s := builder.DeriveSeed(base, h.Sum64())
	s = builder.DeriveSeed(s, uint64(n))

	return builder.DeriveSeed(s, uint64(rep))
}

// buildInstance draws the cell's graph, redrawing with fresh derived seeds
// until it has an edge. It returns the seed that produced the graph.
func buildInstance(base int64, t task) (*core.Graph, int64, error) {
	seed := InstanceSeed(base, t.gen.Name, t.n, t.rep)
	for attempt := 0; attempt < maxRedraws; attempt++ {
		g, err := t.gen.Build(t.n, seed)
		if err != nil {
			return nil, 0, fmt.Errorf("%s n=%d rep=%d: %w", t.gen.Name, t.n, t.rep, err)
		}
		if g.Size() > 0 {
			return g, seed, nil
		}
		seed = builder.DeriveSeed(seed, uint64(attempt+1))
	}

	return nil, 0, fmt.Errorf("%s n=%d rep=%d: %w", t.gen.Name, t.n, t.rep, ErrEdgelessInstance)
}
