// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/internal/config"
	"github.com/katalvlaran/lvcover/vcover"
)

// Config is a resolved experiment description.
type Config struct {
	Generators  []string
	Algorithms  []vcover.Algorithm
	Reference   vcover.Algorithm
	Sizes       []int
	Repetitions int
	Seed        int64
	Parallelism int
	// Options applies to every solve; Seed is replaced by the instance seed.
	Options vcover.Options
}

// FromConfig resolves the experiment and solver sections of a config file.
func FromConfig(c *config.Config) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	opts, err := c.Solver.Options()
	if err != nil {
		return Config{}, err
	}
	ref, err := vcover.ParseAlgorithm(c.Experiment.Reference)
	if err != nil {
		return Config{}, err
	}

	out := Config{
		Generators:  append([]string(nil), c.Experiment.Generators...),
		Reference:   ref,
		Sizes:       c.Experiment.Sizes.Sizes(),
		Repetitions: c.Experiment.Repetitions,
		Seed:        c.Experiment.Seed,
		Parallelism: c.Experiment.Parallelism,
		Options:     opts,
	}
	for _, name := range c.Experiment.Algorithms {
		algo, err := vcover.ParseAlgorithm(name)
		if err != nil {
			return Config{}, err
		}
		out.Algorithms = append(out.Algorithms, algo)
	}

	return out, nil
}

// Validate reports the first problem, wrapped with ErrInvalidExperiment.
func (c Config) Validate() error {
	switch {
	case len(c.Generators) == 0:
		return fmt.Errorf("%w: no generators", ErrInvalidExperiment)
	case len(c.Sizes) == 0:
		return fmt.Errorf("%w: no sizes", ErrInvalidExperiment)
	case c.Repetitions < 1:
		return fmt.Errorf("%w: repetitions %d < 1", ErrInvalidExperiment, c.Repetitions)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism %d < 1", ErrInvalidExperiment, c.Parallelism)
	case !c.Reference.Exact():
		return fmt.Errorf("%w: reference %v is not exact", ErrInvalidExperiment, c.Reference)
	}
	for _, name := range c.Generators {
		if _, err := builder.LookupGenerator(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
		}
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d < 1", ErrInvalidExperiment, n)
		}
	}
	if err := c.Options.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
	}

	return nil
}
