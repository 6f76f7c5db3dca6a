// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Canonical model:
//   • Include each unordered pair {i,j}, i<j, independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and draws nothing.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   • Stable trial order: i asc, then j asc (j > i).

package builder

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "rng is required for p=%.6f", p)
		}

		base := d.block(n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case stochastic:
					if cfg.rng.Float64() < p {
						d.link(base+i, base+j)
					}
				case p == MaxProbability:
					d.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
