// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/graphio"
)

func TestReadEdgeList(t *testing.T) {
	in := `# Model: Erdos Renyi
# Vertices: 6
# FromNodeId	ToNodeId
0	1
1 2

2	0
1	0
`
	g, err := graphio.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 6, g.Order(), "header declares isolated vertices 3..5")
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}}, g.Edges())
}

func TestReadEdgeList_OrderFromMaxID(t *testing.T) {
	g, err := graphio.ReadEdgeList(strings.NewReader("# Vertices: 2\n4 7\n"))
	require.NoError(t, err)
	require.Equal(t, 8, g.Order())
	require.Equal(t, 1, g.Size())

	empty, err := graphio.ReadEdgeList(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	require.Zero(t, empty.Order())
}

func TestReadEdgeList_Strict(t *testing.T) {
	cases := map[string]string{
		"three fields": "0 1 2\n",
		"not a number": "0 x\n",
		"negative":     "-1 2\n",
		"one field":    "5\n",
	}
	for name, in := range cases {
		_, err := graphio.ReadEdgeList(strings.NewReader("0 1\n" + in))
		require.ErrorIs(t, err, graphio.ErrMalformedLine, name)
		require.Contains(t, err.Error(), "line 2", name)
	}

	_, err := graphio.ReadEdgeList(strings.NewReader("3 3\n"))
	require.ErrorIs(t, err, graphio.ErrMalformedLine)
	require.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestReadEdgeList_Lenient(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	g, err := graphio.ReadEdgeList(strings.NewReader("0 1\nbad line here\n2 2\n1 2\n"),
		graphio.WithLenient(logger))
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())
	require.Equal(t, 2, strings.Count(logs.String(), "skipping edge-list line"))

	_, err = graphio.ReadEdgeList(strings.NewReader("x\n"), graphio.WithLenient(nil))
	require.NoError(t, err)
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	g := core.MustNewGraph(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 1}})

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteEdgeList(&buf, g, graphio.Meta{Model: "manual", Params: "none"}))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "# Model: manual\n# Params: none\n# Vertices: 5\n# Edges: 3\n"))
	require.Contains(t, out, "1\t3\n")

	back, err := graphio.ReadEdgeList(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Order(), back.Order())
	require.Equal(t, g.Edges(), back.Edges())

	require.ErrorIs(t, graphio.WriteEdgeList(&buf, nil, graphio.Meta{}), core.ErrInvalidGraph)
}

func TestYAML_RoundTrip(t *testing.T) {
	g := core.MustNewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 1}})

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteYAML(&buf, g, graphio.Meta{Model: "path"}))
	out := buf.String()
	require.Contains(t, out, "model: path")
	require.NotContains(t, out, "params")
	require.Contains(t, out, "vertices: 4")
	require.Contains(t, out, "- [1, 2]")

	back, err := graphio.ReadYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, back.Order())
	require.Equal(t, g.Edges(), back.Edges())
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := graphio.ReadYAML(strings.NewReader("vertices: 3\nedges:\n  - [0, 1, 2]\n"))
	require.ErrorIs(t, err, graphio.ErrMalformedLine)

	_, err = graphio.ReadYAML(strings.NewReader("vertices: 3\nedges:\n  - [1, 1]\n"))
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = graphio.ReadYAML(strings.NewReader("vertices: 3\nedges:\n  - [0, 1]\n  - [1, 0]\n"))
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = graphio.ReadYAML(strings.NewReader("vertices: 3\ncolour: red\n"))
	require.Error(t, err, "unknown keys are rejected")

	g, err := graphio.ReadYAML(strings.NewReader("vertices: 2\nedges:\n  - [0, 4]\n  - [a, b]\n"),
		graphio.WithLenient(nil))
	require.NoError(t, err)
	require.Equal(t, 5, g.Order())
	require.Equal(t, 1, g.Size())

	empty, err := graphio.ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, empty.Order())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	g := core.MustNewGraph(6, []core.Edge{{U: 0, V: 5}, {U: 1, V: 2}, {U: 2, V: 3}})

	for _, name := range []string{"g.txt", "g.EDGES", "g.snap", "g.yaml", "g.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.SaveFile(path, g, graphio.Meta{}))
		back, err := graphio.LoadFile(path)
		require.NoError(t, err, name)
		require.Equal(t, g.Order(), back.Order(), name)
		require.Equal(t, g.Edges(), back.Edges(), name)
	}

	_, err := graphio.LoadFile(filepath.Join(dir, "g.csv"))
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
	require.ErrorIs(t, graphio.SaveFile(filepath.Join(dir, "g.json"), g, graphio.Meta{}), graphio.ErrUnknownFormat)

	_, err = graphio.LoadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0 0\n"), 0o600))
	_, err = graphio.LoadFile(bad)
	require.ErrorIs(t, err, graphio.ErrMalformedLine)
	require.Contains(t, err.Error(), bad)
}

func TestFormatFromPath(t *testing.T) {
	f, err := graphio.FormatFromPath("/tmp/x.YML")
	require.NoError(t, err)
	require.Equal(t, graphio.YAML, f)
	require.Equal(t, "yaml", f.String())
	require.Equal(t, "edgelist", graphio.EdgeList.String())
	require.Equal(t, "Format(7)", graphio.Format(7).String())
}
