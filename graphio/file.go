// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvcover/core"
)

// Format identifies an on-disk graph encoding.
type Format int

const (
	EdgeList Format = iota
	YAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case EdgeList:
		return "edgelist"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

var formatByExt = map[string]Format{
	".txt":   EdgeList,
	".edges": EdgeList,
	".snap":  EdgeList,
	".yaml":  YAML,
	".yml":   YAML,
}

// FormatFromPath picks the format from the file extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formatByExt[ext]
	if !ok {
		return 0, fmt.Errorf("FormatFromPath: %q: %w", path, ErrUnknownFormat)
	}

	return f, nil
}

// LoadFile reads the graph at path in the format implied by its extension.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	var g *core.Graph
	switch format {
	case YAML:
		g, err = ReadYAML(f, opts...)
	default:
		g, err = ReadEdgeList(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return g, nil
}

// SaveFile writes g to path in the format implied by its extension,
// replacing any existing file.
func SaveFile(path string, g *core.Graph, meta Meta) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveFile: %w", cerr)
		}
	}()

	switch format {
	case YAML:
		err = WriteYAML(f, g, meta)
	default:
		err = WriteEdgeList(f, g, meta)
	}

	return err
}
