// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// validators.go — shared parameter checks; each returns a wrapped sentinel.

package builder

// validateMin rejects got < min with ErrTooFewVertices.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateProbability rejects p outside [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
