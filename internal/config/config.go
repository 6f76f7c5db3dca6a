// SPDX-License-Identifier: MIT

// Package config loads the lvcover YAML configuration.
//
// Config file locations (priority order):
//  1. the path given on the command line
//  2. $LVCOVER_CONFIG
//  3. ./lvcover.yaml
//
// Missing files fall back to DefaultConfig; command-line flags override
// whatever the file says.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/internal/logging"
	"github.com/katalvlaran/lvcover/vcover"
)

// EnvConfigPath names the environment variable consulted by FindConfigPath.
const EnvConfigPath = "LVCOVER_CONFIG"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "lvcover.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}

	return ""
}

// Load reads path, or the file FindConfigPath picks when path is empty.
// With no file at all it returns DefaultConfig and an empty path.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultConfig mirrors the classic sweep: Erdős–Rényi graphs of 10..30
// vertices, 40 repetitions each, memoized search as the reference.
func DefaultConfig() *Config {
	cfg := &Config{
		Experiment: ExperimentConfig{
			Generators:  []string{builder.GeneratorErdosRenyi},
			Algorithms:  []string{vcover.Approximation.String(), vcover.Tabu.String()},
			Sizes:       SizeRange{Start: 10, Stop: 30, Step: 5},
			Repetitions: 40,
			Seed:        42,
		},
		Output: OutputConfig{CSV: "results.csv"},
	}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in missing values.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = logging.LevelInfo.String()
	}
	if c.Logging.Format == "" {
		c.Logging.Format = string(logging.FormatText)
	}
	if c.Solver.Seeding == nil {
		seeding := true
		c.Solver.Seeding = &seeding
	}
	if c.Experiment.Reference == "" {
		c.Experiment.Reference = vcover.Memoized.String()
	}
	if c.Experiment.Sizes.Step == 0 {
		c.Experiment.Sizes.Step = 1
	}
	if c.Experiment.Sizes.Stop == 0 {
		c.Experiment.Sizes.Stop = c.Experiment.Sizes.Start
	}
	if c.Experiment.Repetitions == 0 {
		c.Experiment.Repetitions = 1
	}
	if c.Experiment.Parallelism == 0 {
		c.Experiment.Parallelism = runtime.GOMAXPROCS(0)
	}
}

// Validate checks every field; problems are joined and wrapped with
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Solver.Options(); err != nil {
		errs = append(errs, err)
	}

	e := c.Experiment
	for _, name := range e.Generators {
		if _, err := builder.LookupGenerator(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range e.Algorithms {
		if _, err := vcover.ParseAlgorithm(name); err != nil {
			errs = append(errs, err)
		}
	}
	if ref, err := vcover.ParseAlgorithm(e.Reference); err != nil {
		errs = append(errs, err)
	} else if !ref.Exact() {
		add("reference %q is not an exact algorithm", e.Reference)
	}
	if e.Sizes.Sizes() == nil {
		add("sizes %+v: need 1 ≤ start ≤ stop and step ≥ 1", e.Sizes)
	}
	if e.Repetitions < 1 {
		add("repetitions %d < 1", e.Repetitions)
	}
	if e.Parallelism < 1 {
		add("parallelism %d < 1", e.Parallelism)
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Options resolves the solver section into vcover.Options.
func (s SolverConfig) Options() (vcover.Options, error) {
	o := vcover.DefaultOptions()
	if s.Seeding != nil {
		o.Seeding = *s.Seeding
	}
	if s.UpperBound != nil {
		o.UpperBound = *s.UpperBound
	}
	if s.TabuTenure != 0 {
		o.TabuTenure = s.TabuTenure
	}
	if s.MaxIterations != 0 {
		o.MaxIterations = s.MaxIterations
	}
	if s.StagnationLimit != nil {
		o.StagnationLimit = *s.StagnationLimit
	}
	if s.Penalty != 0 {
		o.Penalty = s.Penalty
	}
	switch strings.ToLower(s.TabuStart) {
	case "", "approx":
		o.TabuStart = vcover.StartApprox
	case "full":
		o.TabuStart = vcover.StartFull
	default:
		return o, fmt.Errorf("tabu_start %q: want approx or full: %w", s.TabuStart, vcover.ErrBadOption)
	}
	o.TimeLimit = s.TimeLimit.Duration()
	o.Decompose = s.Decompose

	if err := o.Validate(); err != nil {
		return o, err
	}

	return o, nil
}
