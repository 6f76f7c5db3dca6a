// SPDX-License-Identifier: MIT

// Package experiment measures vertex cover solvers on generated graphs.
//
// A Runner sweeps generator × size × repetition. Every instance is built
// with a seed derived from the base seed, the generator name, the size and
// the repetition, and is redrawn until it has at least one edge. The
// reference solver (memoized search by default) supplies the optimum; every
// configured algorithm is then timed on the same instance and scored by the
// quality ratio |C| / OPT.
//
// Results are aggregated into Rows (mean seconds and mean quality per
// generator, algorithm and size) that WriteCSV emits. A Store keeps runs and
// raw measurements in SQLite, and Metrics exports Prometheus series.
package experiment
