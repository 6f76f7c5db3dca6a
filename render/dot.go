// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"strconv"
	"text/template"

	"github.com/katalvlaran/lvcover/core"
)

// Fill colours of cover and non-cover vertices.
const (
	CoverColor = "tomato"
	OtherColor = "skyblue"
)

const tmplCover = `graph lvcover {
	label={{printf "%q" .Title}};
	labelloc="t";
	fontname="Verdana";
	node [shape="circle" style="filled" fontname="Verdana"];
{{- range .Nodes}}
	{{printf "%q" .ID}} [fillcolor={{printf "%q" .Color}}];
{{- end}}
{{- range .Edges}}
	{{printf "%q -- %q" .From .To}};
{{- end}}
}
`

var coverTemplate = template.Must(template.New("cover").Parse(tmplCover))

type dotNode struct {
	ID    string
	Color string
}

type dotEdge struct {
	From, To string
}

type dotGraph struct {
	Title string
	Nodes []dotNode
	Edges []dotEdge
}

// DOT returns Graphviz source for g with the vertices of cover highlighted.
// Ids in cover that are not vertices of g are ignored.
func DOT(g *core.Graph, cover []int, title string) []byte {
	in := make([]bool, g.Order())
	for _, v := range cover {
		if g.HasVertex(v) {
			in[v] = true
		}
	}

	dg := dotGraph{
		Title: title,
		Nodes: make([]dotNode, g.Order()),
		Edges: make([]dotEdge, 0, g.Size()),
	}
	for v := range dg.Nodes {
		dg.Nodes[v] = dotNode{ID: strconv.Itoa(v), Color: OtherColor}
		if in[v] {
			dg.Nodes[v].Color = CoverColor
		}
	}
	for _, e := range g.EdgesUnsafe() {
		dg.Edges = append(dg.Edges, dotEdge{From: strconv.Itoa(e.U), To: strconv.Itoa(e.V)})
	}

	var buf bytes.Buffer
	// The template only formats strings; execution cannot fail on dotGraph.
	if err := coverTemplate.Execute(&buf, dg); err != nil {
		panic(err)
	}

	return buf.Bytes()
}
