// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w (builderErrorf).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree, m, k)
// is outside the allowed domain for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not produce a valid graph
// (nil constructor, exhausted retries, or an edge list rejected by core).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enumerated parameter (e.g. a solid name).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownGenerator indicates a random-model name that LookupGenerator does not know.
var ErrUnknownGenerator = errors.New("builder: unknown generator")

// builderErrorf wraps sentinel with "<method>: <message>: %w".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
