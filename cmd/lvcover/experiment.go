// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcover/experiment"
)

func newExperimentCmd(a *app) *cobra.Command {
	var (
		csvPath     string
		dbPath      string
		metricsPath string
		plotPath    string
		parallel    int
		reps        int
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Benchmark solvers on random instances against an exact reference",
		Long: `experiment samples Repetitions graphs per generator and size, solves each
with the reference algorithm and every configured algorithm, and reports mean
time and approximation quality (|C| / OPT) per generator, algorithm and size.
The sweep itself is described by the experiment section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			out := a.cfg.Output
			if fl.Changed("csv") {
				out.CSV = csvPath
			}
			if fl.Changed("db") {
				out.Database = dbPath
			}
			if fl.Changed("metrics") {
				out.Metrics = metricsPath
			}
			if fl.Changed("plot") {
				out.Plot = plotPath
			}
			if fl.Changed("parallel") {
				a.cfg.Experiment.Parallelism = parallel
			}
			if fl.Changed("repetitions") {
				a.cfg.Experiment.Repetitions = reps
			}
			if fl.Changed("seed") {
				a.cfg.Experiment.Seed = seed
			}

			ecfg, err := experiment.FromConfig(a.cfg)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			r := &experiment.Runner{
				Config:  ecfg,
				Logger:  a.logger,
				Metrics: experiment.NewMetrics(reg),
			}
			if out.Database != "" {
				st, err := experiment.OpenStore(out.Database)
				if err != nil {
					return err
				}
				defer st.Close()
				r.Store = st
			}

			rep, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			labelColor.Fprintf(w, "%-8s", "run")
			fmt.Fprintf(w, " %s: %d measurements in %s\n", rep.RunID, len(rep.Measurements), rep.Elapsed.Round(time.Millisecond))
			printRows(w, rep.Rows)

			if out.CSV != "" {
				if err := writeCSVFile(out.CSV, rep.Rows); err != nil {
					return err
				}
				a.logger.Info("results written", "path", out.CSV, "rows", len(rep.Rows))
			}
			if out.Plot != "" {
				paths, err := experiment.Plot(rep.Rows, out.Plot)
				if err != nil {
					return err
				}
				a.logger.Info("plots written", "paths", paths)
			}
			if out.Metrics != "" {
				if err := prometheus.WriteToTextfile(out.Metrics, reg); err != nil {
					return fmt.Errorf("write metrics %s: %w", out.Metrics, err)
				}
				a.logger.Info("metrics written", "path", out.Metrics)
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&csvPath, "csv", "", "write aggregated rows to this CSV file (overrides config)")
	fl.StringVar(&dbPath, "db", "", "record the run in this SQLite database (overrides config)")
	fl.StringVar(&metricsPath, "metrics", "", "write Prometheus text metrics to this file (overrides config)")
	fl.StringVar(&plotPath, "plot", "", "draw size vs mean time to this image (.png, .svg, .pdf); one per generator")
	fl.IntVarP(&parallel, "parallel", "p", 0, "instances solved concurrently (overrides config)")
	fl.IntVar(&reps, "repetitions", 0, "instances per generator and size (overrides config)")
	fl.Int64Var(&seed, "seed", 0, "base seed (overrides config)")

	cmd.AddCommand(newRunsCmd(a))

	return cmd
}

// newRunsCmd lists the runs recorded in a results database.
func newRunsCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List experiment runs stored in a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				dbPath = a.cfg.Output.Database
			}
			if dbPath == "" {
				return fmt.Errorf("runs: no database: set --db or output.database")
			}
			st, err := experiment.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.Runs(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, run := range runs {
				labelColor.Fprintf(w, "%s", run.ID)
				fmt.Fprintf(w, " %s seed=%d reference=%s measurements=%d elapsed=%s\n",
					run.Started.Format(time.RFC3339), run.Seed, run.Reference, run.Measurements,
					run.Elapsed.Round(time.Millisecond))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "results database (default output.database)")

	return cmd
}

func writeCSVFile(path string, rows []experiment.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return experiment.WriteCSV(f, rows)
}
