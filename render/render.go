// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvcover/core"
)

// ErrUnsupportedFormat indicates an output format go-graphviz is not asked to produce.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

var formats = map[string]graphviz.Format{
	"png":  graphviz.PNG,
	"svg":  graphviz.SVG,
	"jpg":  graphviz.JPG,
	"jpeg": graphviz.JPG,
}

// ParseFormat maps "png", "svg", "jpg"/"jpeg" (any case, optional leading
// dot) to a go-graphviz format.
func ParseFormat(name string) (graphviz.Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimPrefix(name, "."))]
	if !ok {
		return "", fmt.Errorf("ParseFormat %q: %w", name, ErrUnsupportedFormat)
	}

	return f, nil
}

// Render lays out DOT source and writes the image in format to w.
func Render(w io.Writer, dot []byte, format graphviz.Format) (err error) {
	gv := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		gv.Close()
		return fmt.Errorf("Render: parse dot: %w", err)
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Render: %w", cerr)
		}
		gv.Close()
	}()

	if err = gv.Render(graph, format, w); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}

// RenderFile draws g with cover highlighted into path. The extension picks
// the format; ".dot" and ".gv" write the DOT source itself.
func RenderFile(path string, g *core.Graph, cover []int, title string) (err error) {
	src := DOT(g, cover, title)

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".dot" || ext == ".gv" {
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return fmt.Errorf("RenderFile: %w", err)
		}
		return nil
	}

	format, err := ParseFormat(ext)
	if err != nil {
		return fmt.Errorf("RenderFile %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("RenderFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("RenderFile: %w", cerr)
		}
	}()

	return Render(f, src, format)
}
