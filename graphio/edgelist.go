// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: SNAP-style edge lists. Reading tolerates comment lines, blank lines,
//       tabs or spaces and duplicate pairs; writing emits a commented header
//       followed by one tab-separated pair per edge in canonical order.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcover/core"
)

const maxLineBytes = 1 << 20

// Meta describes how a graph was produced. Empty fields are not written.
type Meta struct {
	Model  string `yaml:"model,omitempty"`
	Params string `yaml:"params,omitempty"`
}

// ReadEdgeList parses a SNAP-style edge list.
//
// Errors:
//   - ErrMalformedLine (with line number) for a line that is not two
//     non-negative integers or that is a self-loop; core.ErrSelfLoop is also
//     in the chain for the latter. Lenient readers skip such lines.
//   - Read errors from r, wrapped.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newReadConfig(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		edges    []core.Edge
		declared int
		n        int
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if k, ok := parseVerticesHeader(line); ok && k > declared {
				declared = k
			}
			continue
		}

		e, err := parsePair(line)
		if err != nil {
			err = fmt.Errorf("ReadEdgeList: line %d %q: %w", lineNo, line, err)
			if !cfg.lenient {
				return nil, err
			}
			cfg.logger.Warn("skipping edge-list line", "line", lineNo, "text", line, "err", err)
			continue
		}
		edges = append(edges, e)
		if e.V+1 > n {
			n = e.V + 1
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}
	if declared > n {
		n = declared
	}

	g, err := core.NewGraph(n, edges, core.WithMergeDuplicates())
	if err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}

	return g, nil
}

// parsePair returns the normalized edge on a data line.
func parsePair(line string) (core.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return core.Edge{}, fmt.Errorf("want 2 fields, got %d: %w", len(fields), ErrMalformedLine)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil || u < 0 {
		return core.Edge{}, fmt.Errorf("bad vertex %q: %w", fields[0], ErrMalformedLine)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil || v < 0 {
		return core.Edge{}, fmt.Errorf("bad vertex %q: %w", fields[1], ErrMalformedLine)
	}
	if u == v {
		return core.Edge{}, fmt.Errorf("%w: %w", ErrMalformedLine, core.ErrSelfLoop)
	}

	return core.Edge{U: u, V: v}.Normalize(), nil
}

// parseVerticesHeader recognises "# Vertices: N" (any case, optional spaces).
func parseVerticesHeader(line string) (int, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, val, ok := strings.Cut(body, ":")
	if !ok || !strings.EqualFold(strings.TrimSpace(key), "vertices") {
		return 0, false
	}
	k, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || k < 0 {
		return 0, false
	}

	return k, true
}

// WriteEdgeList writes g as a SNAP-style edge list with a commented header
// carrying meta, the vertex count and the edge count.
func WriteEdgeList(w io.Writer, g *core.Graph, meta Meta) error {
	if g == nil {
		return fmt.Errorf("WriteEdgeList: %w", core.ErrInvalidGraph)
	}
	bw := bufio.NewWriter(w)
	if meta.Model != "" {
		fmt.Fprintf(bw, "# Model: %s\n", meta.Model)
	}
	if meta.Params != "" {
		fmt.Fprintf(bw, "# Params: %s\n", meta.Params)
	}
	fmt.Fprintf(bw, "# Vertices: %d\n", g.Order())
	fmt.Fprintf(bw, "# Edges: %d\n", g.Size())
	fmt.Fprintln(bw, "# FromNodeId\tToNodeId")
	for _, e := range g.EdgesUnsafe() {
		fmt.Fprintf(bw, "%d\t%d\n", e.U, e.V)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdgeList: %w", err)
	}

	return nil
}
