// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcover/graphio"
	"github.com/katalvlaran/lvcover/render"
	"github.com/katalvlaran/lvcover/vcover"
)

// defaultExactLimit is the largest order handed to exact solvers unless
// --exact-limit says otherwise.
const defaultExactLimit = 40

type solveFlags struct {
	algo       string
	seed       int64
	timeout    time.Duration
	upperBound int
	decompose  bool
	noSeeding  bool
	tenure     int
	maxIter    int
	stagnation int
	tabuStart  string
	renderPath string
	lenient    bool
	exactLimit int
	hideCover  bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Find a vertex cover of a graph file (.txt/.edges/.snap or .yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args[0])
		},
	}

	names := make([]string, 0, len(vcover.Algorithms()))
	for _, algo := range vcover.Algorithms() {
		names = append(names, algo.String())
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.algo, "algo", "a", vcover.Approximation.String(),
		"algorithm: "+strings.Join(names, ", ")+" or all")
	fl.Int64Var(&f.seed, "seed", 0, "tabu search seed")
	fl.DurationVar(&f.timeout, "timeout", 0, "per-solver time limit (0 = none)")
	fl.IntVar(&f.upperBound, "upper-bound", vcover.NoUpperBound, "only accept covers of at most k vertices")
	fl.BoolVar(&f.decompose, "decompose", false, "solve connected components independently")
	fl.BoolVar(&f.noSeeding, "no-seeding", false, "do not seed exact searches with the 2-approximation")
	fl.IntVar(&f.tenure, "tabu-tenure", vcover.DefaultTabuTenure, "tabu tenure in iterations")
	fl.IntVar(&f.maxIter, "max-iterations", vcover.DefaultMaxIterations, "tabu iteration cap")
	fl.IntVar(&f.stagnation, "stagnation-limit", vcover.DefaultStagnationLimit, "tabu iterations without improvement (0 = off)")
	fl.StringVar(&f.tabuStart, "tabu-start", "approx", "tabu start: approx or full")
	fl.StringVar(&f.renderPath, "render", "", "draw the cover to this file (.png, .svg, .jpg, .dot)")
	fl.BoolVar(&f.lenient, "lenient", false, "skip malformed lines instead of failing")
	fl.IntVar(&f.exactLimit, "exact-limit", defaultExactLimit, "skip exact solvers above this many vertices (0 = no limit)")
	fl.BoolVar(&f.hideCover, "quiet", false, "print sizes only")

	return cmd
}

// options merges the config file's solver section with explicitly set flags.
func (f *solveFlags) options(cmd *cobra.Command, a *app) (vcover.Options, error) {
	sc := a.cfg.Solver
	fl := cmd.Flags()
	if fl.Changed("no-seeding") {
		seeding := !f.noSeeding
		sc.Seeding = &seeding
	}
	if fl.Changed("upper-bound") {
		ub := f.upperBound
		sc.UpperBound = &ub
	}
	if fl.Changed("tabu-tenure") {
		sc.TabuTenure = f.tenure
	}
	if fl.Changed("max-iterations") {
		sc.MaxIterations = f.maxIter
	}
	if fl.Changed("stagnation-limit") {
		limit := f.stagnation
		sc.StagnationLimit = &limit
	}
	if fl.Changed("tabu-start") {
		sc.TabuStart = f.tabuStart
	}
	if fl.Changed("decompose") {
		sc.Decompose = f.decompose
	}
	o, err := sc.Options()
	if err != nil {
		return o, err
	}
	if fl.Changed("timeout") {
		o.TimeLimit = f.timeout
	}
	o.Seed = f.seed

	return o, o.Validate()
}

func (f *solveFlags) algorithms() ([]vcover.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(f.algo), "all") {
		return vcover.Algorithms(), nil
	}
	algo, err := vcover.ParseAlgorithm(f.algo)
	if err != nil {
		return nil, err
	}

	return []vcover.Algorithm{algo}, nil
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, path string) error {
	algos, err := f.algorithms()
	if err != nil {
		return err
	}
	opts, err := f.options(cmd, a)
	if err != nil {
		return err
	}

	var readOpts []graphio.Option
	if f.lenient {
		readOpts = append(readOpts, graphio.WithLenient(a.logger))
	}
	g, err := graphio.LoadFile(path, readOpts...)
	if err != nil {
		return err
	}
	a.logger.Info("graph loaded", "path", path, "vertices", g.Order(), "edges", g.Size())

	out := cmd.OutOrStdout()
	printGraph(out, filepath.Base(path), g)

	var (
		best   vcover.Result
		found  bool
		failed int
	)
	for _, algo := range algos {
		if algo.Exact() && f.exactLimit > 0 && g.Order() > f.exactLimit {
			printSkipped(out, algo, fmt.Sprintf("%d vertices > --exact-limit %d", g.Order(), f.exactLimit))
			continue
		}
		res, err := vcover.SolveWithOptions(cmd.Context(), g, algo, opts)
		printResult(out, res, err, !f.hideCover)
		if err != nil {
			failed++
			a.logger.Warn("solve failed", "algo", algo.String(), "err", err)
			continue
		}
		a.logger.Debug("solved", "algo", algo.String(), "size", res.Size, "elapsed", res.Elapsed)
		if !found || res.Size < best.Size {
			best, found = res, true
		}
	}

	if f.renderPath != "" && found {
		title := fmt.Sprintf("%s: |C| = %d", best.Algorithm, best.Size)
		if err := render.RenderFile(f.renderPath, g, best.Cover, title); err != nil {
			return err
		}
		a.logger.Info("cover rendered", "path", f.renderPath, "algo", best.Algorithm.String())
	}
	if failed > 0 && !found {
		return fmt.Errorf("solve %s: all %d solver runs failed", path, failed)
	}

	return nil
}
