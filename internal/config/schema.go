// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the lvcover configuration file.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Solver     SolverConfig     `yaml:"solver"`
	Experiment ExperimentConfig `yaml:"experiment"`
	Output     OutputConfig     `yaml:"output"`
}

// LoggingConfig selects level ("debug".."error") and format ("text", "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SolverConfig holds solver knobs. Zero values and nil pointers keep the
// solver defaults; pointer fields distinguish an explicit 0 or false.
type SolverConfig struct {
	Seeding         *bool    `yaml:"seeding,omitempty"`
	UpperBound      *int     `yaml:"upper_bound,omitempty"`
	TabuTenure      int      `yaml:"tabu_tenure,omitempty"`
	MaxIterations   int      `yaml:"max_iterations,omitempty"`
	StagnationLimit *int     `yaml:"stagnation_limit,omitempty"`
	Penalty         int      `yaml:"penalty,omitempty"`
	TabuStart       string   `yaml:"tabu_start,omitempty"`
	TimeLimit       Duration `yaml:"time_limit,omitempty"`
	Decompose       bool     `yaml:"decompose,omitempty"`
}

// SizeRange is the inclusive vertex-count sweep start, start+step, …, ≤ stop.
type SizeRange struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
	Step  int `yaml:"step"`
}

// Sizes expands the range. An invalid range yields nil.
func (r SizeRange) Sizes() []int {
	if r.Start < 1 || r.Step < 1 || r.Stop < r.Start {
		return nil
	}
	out := make([]int, 0, (r.Stop-r.Start)/r.Step+1)
	for n := r.Start; n <= r.Stop; n += r.Step {
		out = append(out, n)
	}

	return out
}

// ExperimentConfig describes an experiment sweep.
type ExperimentConfig struct {
	Generators  []string  `yaml:"generators"`
	Algorithms  []string  `yaml:"algorithms"`
	Reference   string    `yaml:"reference"`
	Sizes       SizeRange `yaml:"sizes"`
	Repetitions int       `yaml:"repetitions"`
	Seed        int64     `yaml:"seed"`
	Parallelism int       `yaml:"parallelism"`
}

// OutputConfig names where experiment results go. Empty paths are skipped.
type OutputConfig struct {
	CSV      string `yaml:"csv"`
	Database string `yaml:"database"`
	Metrics  string `yaml:"metrics"`
	// Plot is the size-vs-time figure; one file per generator when several.
	Plot string `yaml:"plot"`
}

// Duration wraps time.Duration for YAML strings such as "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }
