// SPDX-License-Identifier: MIT

// Package graphio reads and writes core.Graph instances.
//
// Formats:
//
//   - Edge list (SNAP style, extensions .txt, .edges, .snap): one
//     whitespace-separated pair "u v" per line, '#' starts a comment line.
//     The vertex count is max id + 1 unless a "# Vertices: N" header asks for
//     more. Repeated and reversed pairs collapse into one edge; self-loops
//     are rejected.
//   - YAML (.yaml, .yml): {vertices: n, edges: [[u, v], ...]} with optional
//     model and params metadata.
//
// Strict by default: the first malformed line aborts with ErrMalformedLine.
// WithLenient(logger) skips such lines and logs a warning per line instead.
package graphio
