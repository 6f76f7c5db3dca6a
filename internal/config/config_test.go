// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/vcover"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvcover.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "memo", cfg.Experiment.Reference)
	require.Equal(t, []int{10, 15, 20, 25, 30}, cfg.Experiment.Sizes.Sizes())
	require.Equal(t, 40, cfg.Experiment.Repetitions)
	require.GreaterOrEqual(t, cfg.Experiment.Parallelism, 1)
	require.True(t, *cfg.Solver.Seeding)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
solver:
  seeding: false
  tabu_tenure: 5
  max_iterations: 2000
  tabu_start: full
  time_limit: 1m30s
  decompose: true
experiment:
  generators: [erdos-renyi, watts-strogatz]
  algorithms: [approx, tabu, bnb]
  sizes: {start: 8, stop: 12, step: 2}
  repetitions: 3
  seed: 7
  parallelism: 2
output:
  csv: out.csv
  database: runs.db
`)
	cfg, got, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, path, got)

	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, []int{8, 10, 12}, cfg.Experiment.Sizes.Sizes())
	require.Equal(t, "memo", cfg.Experiment.Reference, "default applied")
	require.Equal(t, int64(7), cfg.Experiment.Seed)
	require.Equal(t, "runs.db", cfg.Output.Database)

	o, err := cfg.Solver.Options()
	require.NoError(t, err)
	require.False(t, o.Seeding)
	require.Equal(t, 5, o.TabuTenure)
	require.Equal(t, 2000, o.MaxIterations)
	require.Equal(t, vcover.DefaultPenalty, o.Penalty)
	require.Equal(t, vcover.StartFull, o.TabuStart)
	require.Equal(t, 90*time.Second, o.TimeLimit)
	require.True(t, o.Decompose)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"generator": "experiment: {generators: [gnm], sizes: {start: 5}}",
		"algorithm": "experiment: {algorithms: [simplex], sizes: {start: 5}}",
		"reference": "experiment: {reference: tabu, sizes: {start: 5}}",
		"sizes":     "experiment: {sizes: {start: 9, stop: 3}}",
		"level":     "logging: {level: loud}\nexperiment: {sizes: {start: 5}}",
		"tenure":    "solver: {tabu_tenure: -2}\nexperiment: {sizes: {start: 5}}",
		"start":     "solver: {tabu_start: random}\nexperiment: {sizes: {start: 5}}",
	}
	for name, body := range cases {
		_, _, err := LoadFromPath(writeConfig(t, body))
		require.ErrorIs(t, err, ErrInvalidConfig, name)
	}

	_, _, err := LoadFromPath(writeConfig(t, "solver: {time_limit: soon}"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")

	_, _, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_FindsConfig(t *testing.T) {
	path := writeConfig(t, "experiment: {sizes: {start: 4, stop: 6}, repetitions: 2}")
	t.Setenv(EnvConfigPath, path)

	cfg, got, err := Load("")
	require.NoError(t, err)
	require.Equal(t, path, got)
	require.Equal(t, []int{4, 5, 6}, cfg.Experiment.Sizes.Sizes())

	t.Setenv(EnvConfigPath, "")
	t.Chdir(t.TempDir())
	cfg, got, err = Load("")
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, DefaultConfig().Experiment.Sizes, cfg.Experiment.Sizes)
}

func TestSave_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.TimeLimit = Duration(2 * time.Second)
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	back, _, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestSizeRange(t *testing.T) {
	require.Equal(t, []int{1, 4, 7}, SizeRange{Start: 1, Stop: 8, Step: 3}.Sizes())
	require.Equal(t, []int{5}, SizeRange{Start: 5, Stop: 5, Step: 1}.Sizes())
	require.Nil(t, SizeRange{Start: 0, Stop: 5, Step: 1}.Sizes())
	require.Nil(t, SizeRange{Start: 1, Stop: 5, Step: 0}.Sizes())
}

func TestSolverOptions_StagnationLimit(t *testing.T) {
	cfg, _, err := LoadFromPath(writeConfig(t, "solver:\n  stagnation_limit: 0\n"))
	require.NoError(t, err)
	o, err := cfg.Solver.Options()
	require.NoError(t, err)
	require.Zero(t, o.StagnationLimit, "an explicit 0 disables the rule")

	cfg, _, err = LoadFromPath(writeConfig(t, "solver:\n  stagnation_limit: 50\n"))
	require.NoError(t, err)
	o, err = cfg.Solver.Options()
	require.NoError(t, err)
	require.Equal(t, 50, o.StagnationLimit)

	o, err = DefaultConfig().Solver.Options()
	require.NoError(t, err)
	require.Equal(t, vcover.DefaultStagnationLimit, o.StagnationLimit)
}
