// SPDX-License-Identifier: MIT

package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

// Measurement is one solver run on one instance.
type Measurement struct {
	Generator  string
	Vertices   int
	Edges      int
	Repetition int
	Seed       int64
	Algorithm  string
	Seconds    float64
	CoverSize  int
	Optimum    int
	Quality    float64
	Optimal    bool
	// Err is the solver error text; failed runs are left out of Rows.
	Err string
}

// Row aggregates the successful measurements of one generator, algorithm
// and size.
type Row struct {
	Generator   string
	Algorithm   string
	Vertices    int
	MeanSeconds float64
	MeanQuality float64
	Runs        int
}

// Report is the outcome of Runner.Run.
type Report struct {
	RunID        string
	Started      time.Time
	Elapsed      time.Duration
	Measurements []Measurement
	Rows         []Row
}

// quality is |C| / OPT, or 1 when the optimum is empty.
func quality(size, opt int) float64 {
	if opt == 0 {
		return 1
	}

	return float64(size) / float64(opt)
}

// Aggregate averages successful measurements per (generator, algorithm,
// vertices), sorted by those keys.
func Aggregate(ms []Measurement) []Row {
	type key struct {
		gen, algo string
		n         int
	}
	acc := make(map[key]*Row)
	for _, m := range ms {
		if m.Err != "" {
			continue
		}
		k := key{m.Generator, m.Algorithm, m.Vertices}
		row, ok := acc[k]
		if !ok {
			row = &Row{Generator: m.Generator, Algorithm: m.Algorithm, Vertices: m.Vertices}
			acc[k] = row
		}
		row.MeanSeconds += m.Seconds
		row.MeanQuality += m.Quality
		row.Runs++
	}

	rows := make([]Row, 0, len(acc))
	for _, row := range acc {
		row.MeanSeconds /= float64(row.Runs)
		row.MeanQuality /= float64(row.Runs)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Generator != b.Generator {
			return a.Generator < b.Generator
		}
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		return a.Vertices < b.Vertices
	})

	return rows
}

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"generator", "algorithm", "vertices", "mean_seconds", "mean_quality", "runs"}

// WriteCSV writes rows with CSVHeader.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Generator,
			r.Algorithm,
			strconv.Itoa(r.Vertices),
			strconv.FormatFloat(r.MeanSeconds, 'f', 6, 64),
			strconv.FormatFloat(r.MeanQuality, 'f', 5, 64),
			strconv.Itoa(r.Runs),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
