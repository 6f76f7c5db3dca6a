// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrMalformedLine indicates an edge-list line or YAML edge that is not a
	// pair of non-negative integers, or that names a self-loop.
	ErrMalformedLine = errors.New("graphio: malformed line")

	// ErrUnknownFormat indicates a file extension with no registered format.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
