// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/internal/logging"
	"github.com/katalvlaran/lvcover/vcover"
)

// Runner executes an experiment. Logger, Metrics and Store are optional.
type Runner struct {
	Config  Config
	Logger  *slog.Logger
	Metrics *Metrics
	Store   *Store
}

// Run sweeps every instance, Parallelism instances at a time, and returns the
// aggregated report. Instances whose reference solve fails are kept as a
// failed measurement and skipped; a cancelled ctx aborts the run. When a
// Store is set the report is saved before Run returns.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	tasks, err := cfg.tasks()
	if err != nil {
		return Report{}, err
	}
	log := logging.OrDiscard(r.Logger)

	rep := Report{RunID: uuid.NewString(), Started: time.Now().UTC()}
	log.Info("experiment started",
		"run_id", rep.RunID,
		"instances", len(tasks),
		"reference", cfg.Reference.String(),
		"parallelism", cfg.Parallelism)

	results := make([][]Measurement, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			ms, err := r.runTask(gctx, cfg, t, log)
			results[i] = ms
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return rep, fmt.Errorf("experiment %s: %w", rep.RunID, err)
	}

	for _, ms := range results {
		rep.Measurements = append(rep.Measurements, ms...)
	}
	rep.Rows = Aggregate(rep.Measurements)
	rep.Elapsed = time.Since(rep.Started)

	if r.Store != nil {
		if err := r.Store.SaveRun(ctx, rep, cfg); err != nil {
			return rep, err
		}
	}
	log.Info("experiment finished",
		"run_id", rep.RunID,
		"measurements", len(rep.Measurements),
		"elapsed", rep.Elapsed)

	return rep, nil
}

func (r *Runner) runTask(ctx context.Context, cfg Config, t task, log *slog.Logger) ([]Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, seed, err := buildInstance(cfg.Seed, t)
	if err != nil {
		return nil, err
	}
	base := Measurement{
		Generator:  t.gen.Name,
		Vertices:   t.n,
		Edges:      g.Size(),
		Repetition: t.rep,
		Seed:       seed,
	}
	opts := cfg.Options
	opts.Seed = seed

	ref, err := r.solve(ctx, g, cfg.Reference, opts)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	refM := r.record(base, cfg.Reference, ref, err, ref.Size)
	if err != nil {
		log.Warn("reference solve failed, instance skipped",
			"generator", t.gen.Name, "n", t.n, "rep", t.rep, "err", err)
		return []Measurement{refM}, nil
	}
	r.Metrics.instanceDone()

	out := []Measurement{refM}
	for _, algo := range cfg.Algorithms {
		if algo == cfg.Reference {
			continue
		}
		res, err := r.solve(ctx, g, algo, opts)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		m := r.record(base, algo, res, err, ref.Size)
		if err != nil {
			log.Warn("solve failed", "algo", algo.String(), "generator", t.gen.Name, "n", t.n, "err", err)
		}
		log.Debug("solved",
			"algo", m.Algorithm, "generator", m.Generator, "n", m.Vertices, "rep", m.Repetition,
			"size", m.CoverSize, "opt", m.Optimum, "seconds", m.Seconds)
		out = append(out, m)
	}

	return out, nil
}

// solve runs one algorithm, turning an exhausted-search panic into an error
// so a single instance cannot bring the sweep down.
func (r *Runner) solve(ctx context.Context, g *core.Graph, algo vcover.Algorithm, opts vcover.Options) (res vcover.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			perr, ok := p.(error)
			if !ok || !errors.Is(perr, vcover.ErrSearchExhausted) {
				panic(p)
			}
			res, err = vcover.Result{Algorithm: algo}, perr
		}
	}()

	return vcover.SolveWithOptions(ctx, g, algo, opts)
}

func (r *Runner) record(base Measurement, algo vcover.Algorithm, res vcover.Result, err error, opt int) Measurement {
	m := base
	m.Algorithm = algo.String()
	m.Seconds = res.Elapsed.Seconds()
	m.CoverSize = res.Size
	m.Optimum = opt
	m.Optimal = res.Optimal
	m.Quality = quality(res.Size, opt)
	if err != nil {
		m.Err = err.Error()
	}
	r.Metrics.observe(m)

	return m
}
