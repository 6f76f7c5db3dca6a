// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// generators.go — named random models with fixed default parameters.
//
// The experiment harness and the CLI refer to random models by name:
//   • "erdos-renyi"     → RandomSparse(n, 0.2)
//   • "barabasi-albert" → BarabasiAlbert(n, 2)
//   • "watts-strogatz"  → WattsStrogatz(n, 4, 0.25)
//
// Small orders clamp m and k to n-1 so every n the model can express builds.

package builder

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lvcover/core"
)

// Generator names accepted by LookupGenerator.
const (
	GeneratorErdosRenyi     = "erdos-renyi"
	GeneratorBarabasiAlbert = "barabasi-albert"
	GeneratorWattsStrogatz  = "watts-strogatz"
)

// Default parameters of the named models.
const (
	DefaultEdgeProbability = 0.2
	DefaultAttachment      = 2
	DefaultRingDegree      = 4
	DefaultRewireProb      = 0.25
)

// Generator is a named random graph model parameterised only by order.
type Generator struct {
	Name string
	make func(n int) Constructor
}

var generators = map[string]Generator{
	GeneratorErdosRenyi: {
		Name: GeneratorErdosRenyi,
		make: func(n int) Constructor { return RandomSparse(n, DefaultEdgeProbability) },
	},
	GeneratorBarabasiAlbert: {
		Name: GeneratorBarabasiAlbert,
		make: func(n int) Constructor { return BarabasiAlbert(n, clampBelow(DefaultAttachment, n)) },
	},
	GeneratorWattsStrogatz: {
		Name: GeneratorWattsStrogatz,
		make: func(n int) Constructor {
			return WattsStrogatz(n, clampBelow(DefaultRingDegree, n), DefaultRewireProb)
		},
	},
}

func clampBelow(x, n int) int {
	if n > 1 && x >= n {
		return n - 1
	}

	return x
}

// LookupGenerator resolves a model name (case-insensitive, surrounding spaces
// ignored). Unknown names yield ErrUnknownGenerator.
func LookupGenerator(name string) (Generator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	gen, ok := generators[key]
	if !ok {
		return Generator{}, builderErrorf("LookupGenerator", ErrUnknownGenerator, "%q (known: %s)",
			name, strings.Join(GeneratorNames(), ", "))
	}

	return gen, nil
}

// GeneratorNames lists the known model names in ascending order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Constructor returns the model's constructor for n vertices.
func (g Generator) Constructor(n int) Constructor {
	if g.make == nil {
		return nil
	}

	return g.make(n)
}

// Build samples one n-vertex instance seeded with seed.
func (g Generator) Build(n int, seed int64) (*core.Graph, error) {
	return BuildGraph(nil, []BuilderOption{WithSeed(seed)}, g.Constructor(n))
}
