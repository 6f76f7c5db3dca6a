// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// minPlotSeconds keeps zero timings representable on the log axis.
const minPlotSeconds = 1e-9

var plotFormats = map[string]bool{".png": true, ".svg": true, ".pdf": true, ".jpg": true, ".jpeg": true}

// Plot draws mean solve time against graph size, one curve per algorithm on
// a logarithmic time axis, and writes one figure per generator. With a single
// generator the figure goes to path; otherwise the generator name is
// inserted before the extension (results.png → results-erdos-renyi.png).
// The image format follows the extension (.png, .svg, .pdf, .jpg).
// It returns the written paths in generator order.
func Plot(rows []Row, path string) ([]string, error) {
	if len(rows) == 0 {
		return nil, ErrNothingToPlot
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !plotFormats[ext] {
		return nil, fmt.Errorf("Plot %s: %w", path, ErrPlotFormat)
	}

	byGen := make(map[string][]Row)
	for _, r := range rows {
		byGen[r.Generator] = append(byGen[r.Generator], r)
	}
	gens := make([]string, 0, len(byGen))
	for g := range byGen {
		gens = append(gens, g)
	}
	sort.Strings(gens)

	written := make([]string, 0, len(gens))
	for _, gen := range gens {
		out := path
		if len(gens) > 1 {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + "-" + gen + filepath.Ext(path)
		}
		if err := plotGenerator(gen, byGen[gen], out); err != nil {
			return written, err
		}
		written = append(written, out)
	}

	return written, nil
}

func plotGenerator(gen string, rows []Row, path string) error {
	p := plot.New()
	p.Title.Text = "Minimum vertex cover: " + gen
	p.X.Label.Text = "vertices (n)"
	p.Y.Label.Text = "mean solve time (s, log)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	// Algorithm then size order keeps legend entries and line points stable.
	rows = append([]Row(nil), rows...)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Algorithm != rows[j].Algorithm {
			return rows[i].Algorithm < rows[j].Algorithm
		}
		return rows[i].Vertices < rows[j].Vertices
	})

	var (
		lines []any
		algo  string
		xys   plotter.XYs
	)
	flush := func() {
		if len(xys) > 0 {
			lines = append(lines, algo, xys)
		}
	}
	for _, r := range rows {
		if r.Algorithm != algo {
			flush()
			algo, xys = r.Algorithm, nil
		}
		xys = append(xys, plotter.XY{X: float64(r.Vertices), Y: max(r.MeanSeconds, minPlotSeconds)})
	}
	flush()

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return fmt.Errorf("Plot %s: %w", gen, err)
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("Plot %s: %w", path, err)
	}

	return nil
}
