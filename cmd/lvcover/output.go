// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/experiment"
	"github.com/katalvlaran/lvcover/vcover"
)

var (
	labelColor   = color.New(color.FgCyan, color.Bold)
	optimalColor = color.New(color.FgGreen)
	heurColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

func printGraph(w io.Writer, name string, g *core.Graph) {
	st := g.Stats()
	labelColor.Fprintf(w, "%-8s", "graph")
	fmt.Fprintf(w, " %s: %d vertices, %d edges, max degree %d\n", name, st.Vertices, st.Edges, st.MaxDegree)
}

func printResult(w io.Writer, res vcover.Result, err error, showCover bool) {
	labelColor.Fprintf(w, "%-8s", res.Algorithm.String())
	switch {
	case err != nil:
		failColor.Fprintf(w, " size=%d error=%v", res.Size, err)
	case res.Optimal:
		optimalColor.Fprintf(w, " size=%d optimal", res.Size)
	default:
		heurColor.Fprintf(w, " size=%d", res.Size)
	}
	fmt.Fprintf(w, " elapsed=%s nodes=%d\n", res.Elapsed, res.Stats.Nodes)
	if showCover && err == nil {
		fmt.Fprintf(w, "%-8s %v\n", "", res.Cover)
	}
}

func printSkipped(w io.Writer, algo vcover.Algorithm, reason string) {
	labelColor.Fprintf(w, "%-8s", algo.String())
	heurColor.Fprintf(w, " skipped: %s\n", reason)
}

func printRows(w io.Writer, rows []experiment.Row) {
	labelColor.Fprintf(w, "%-16s %-12s %8s %14s %12s %6s\n",
		"generator", "algorithm", "vertices", "mean_seconds", "quality", "runs")
	for _, r := range rows {
		c := optimalColor
		if r.MeanQuality > 1 {
			c = heurColor
		}
		fmt.Fprintf(w, "%-16s %-12s %8d %14.6f ", r.Generator, r.Algorithm, r.Vertices, r.MeanSeconds)
		c.Fprintf(w, "%12.5f", r.MeanQuality)
		fmt.Fprintf(w, " %6d\n", r.Runs)
	}
}
