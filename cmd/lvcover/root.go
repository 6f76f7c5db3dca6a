// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcover/internal/config"
	"github.com/katalvlaran/lvcover/internal/logging"
)

// app carries global flags and the state derived from them in PersistentPreRunE.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "lvcover",
		Short: "Minimum vertex cover solvers and experiments",
		Long: `lvcover finds minimum vertex covers with exact searches (backtracking,
memoization, iterative deepening, branch-and-bound, SAT) and heuristics
(2-approximation, tabu search), generates random instances and measures
solvers against each other.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"config file (default $"+config.EnvConfigPath+" or ./"+config.DefaultFileName+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "",
		"log format: text or json (overrides config)")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newExperimentCmd(a))

	return root
}

// setup loads the config and builds the logger; flags win over the file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Config{Level: level, Format: format, Output: a.stderr})
	if path != "" {
		a.logger.Debug("config loaded", "path", path, "command", cmd.Name())
	}

	return nil
}
