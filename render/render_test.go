// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-graphviz"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/render"
)

func TestDOT_Golden(t *testing.T) {
	gold := goldie.New(t)

	path4 := core.MustNewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	gold.Assert(t, "path4_cover", render.DOT(path4, []int{1, 2}, "P4 cover"))

	// Vertex 4 is isolated; 9 is not a vertex and is ignored.
	star := core.MustNewGraph(5, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}})
	gold.Assert(t, "star_isolated", render.DOT(star, []int{0, 9}, `star "K1,3"`))
}

func TestDOT_Deterministic(t *testing.T) {
	g := core.MustNewGraph(6, []core.Edge{{U: 4, V: 5}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 2, V: 5}})
	a := render.DOT(g, []int{2, 3, 5}, "x")
	b := render.DOT(g, []int{5, 3, 2}, "x")
	require.Equal(t, a, b)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]graphviz.Format{
		"png": graphviz.PNG, ".SVG": graphviz.SVG, "jpg": graphviz.JPG, "jpeg": graphviz.JPG,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := render.ParseFormat("bmp")
	require.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestRender_SVG(t *testing.T) {
	g := core.MustNewGraph(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, render.DOT(g, []int{1}, "P3"), graphviz.SVG))
	require.Contains(t, buf.String(), "<svg")
	// Graphviz writes named colours as hex: tomato and skyblue.
	require.Contains(t, buf.String(), `fill="#ff6347"`)
	require.Contains(t, buf.String(), `fill="#87ceeb"`)

	require.Error(t, render.Render(&buf, []byte("graph {"), graphviz.SVG))
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	g := core.MustNewGraph(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})

	dotPath := filepath.Join(dir, "p3.dot")
	require.NoError(t, render.RenderFile(dotPath, g, []int{1}, "P3"))
	raw, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	require.Equal(t, render.DOT(g, []int{1}, "P3"), raw)

	pngPath := filepath.Join(dir, "p3.png")
	require.NoError(t, render.RenderFile(pngPath, g, []int{1}, "P3"))
	img, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(img, []byte("\x89PNG")))

	require.ErrorIs(t, render.RenderFile(filepath.Join(dir, "p3.bmp"), g, nil, ""), render.ErrUnsupportedFormat)
}
