// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: YAML documents {model, params, vertices, edges}. Each edge is a flow
//       sequence "[u, v]" so documents stay one edge per line.

package graphio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcover/core"
)

type yamlDocument struct {
	Meta     `yaml:",inline"`
	Vertices int        `yaml:"vertices"`
	Edges    []yamlEdge `yaml:"edges"`
}

// yamlEdge is a pair that (un)marshals as a two-element flow sequence.
type yamlEdge struct {
	core.Edge
	err error
}

func (e yamlEdge) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(e.U)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(e.V)},
		},
	}, nil
}

// UnmarshalYAML records a shape problem on the edge instead of failing the
// whole document so lenient readers can skip it.
func (e *yamlEdge) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil || len(pair) != 2 {
		e.err = fmt.Errorf("want [u, v] at line %d: %w", node.Line, ErrMalformedLine)
		return nil
	}
	u, v := pair[0], pair[1]
	switch {
	case u < 0 || v < 0:
		e.err = fmt.Errorf("negative vertex at line %d: %w", node.Line, ErrMalformedLine)
	case u == v:
		e.err = fmt.Errorf("line %d: %w: %w", node.Line, ErrMalformedLine, core.ErrSelfLoop)
	default:
		e.Edge = core.Edge{U: u, V: v}
	}

	return nil
}

// ReadYAML parses a YAML graph document. Vertices smaller than max id + 1 is
// raised to fit; duplicate edges are an error (core.ErrDuplicateEdge).
func ReadYAML(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newReadConfig(opts...)

	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}

	n := doc.Vertices
	edges := make([]core.Edge, 0, len(doc.Edges))
	for i, e := range doc.Edges {
		if e.err != nil {
			err := fmt.Errorf("ReadYAML: edge %d: %w", i, e.err)
			if !cfg.lenient {
				return nil, err
			}
			cfg.logger.Warn("skipping yaml edge", "index", i, "err", err)
			continue
		}
		edges = append(edges, e.Edge)
		if m := max(e.U, e.V) + 1; m > n {
			n = m
		}
	}

	g, err := core.NewGraph(n, edges)
	if err != nil {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}

	return g, nil
}

// WriteYAML encodes g with meta as a YAML document.
func WriteYAML(w io.Writer, g *core.Graph, meta Meta) error {
	if g == nil {
		return fmt.Errorf("WriteYAML: %w", core.ErrInvalidGraph)
	}
	doc := yamlDocument{Meta: meta, Vertices: g.Order(), Edges: make([]yamlEdge, g.Size())}
	for i, e := range g.EdgesUnsafe() {
		doc.Edges[i] = yamlEdge{Edge: e}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}
