// SPDX-License-Identifier: MIT

package experiment

import "errors"

var (
	// ErrInvalidExperiment indicates an unusable Config.
	ErrInvalidExperiment = errors.New("experiment: invalid configuration")

	// ErrEdgelessInstance indicates a generator that kept producing graphs
	// without edges for a size.
	ErrEdgelessInstance = errors.New("experiment: no instance with edges")
)

var (
	// ErrNothingToPlot indicates Plot was given no rows.
	ErrNothingToPlot = errors.New("experiment: no rows to plot")

	// ErrPlotFormat indicates a plot path whose extension has no image encoder.
	ErrPlotFormat = errors.New("experiment: unsupported plot format")
)
