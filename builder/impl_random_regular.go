// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_random_regular.go — RandomRegular(n, d): random d-regular simple graph.
//
// Canonical model:
//   • Stub matching: every vertex contributes d stubs; stubs are shuffled and
//     paired consecutively. A pairing with a loop or a repeated pair is
//     rejected and reshuffled, up to maxStubMatchingAttempts.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • All attempts invalid → ErrConstructFailed.
//
// Complexity: O(n·d) per attempt; attempts are bounded.

package builder

const maxStubMatchingAttempts = 256

// RandomRegular returns a Constructor that appends a random d-regular graph.
func RandomRegular(n, deg int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if deg < 0 || deg >= n {
			return builderErrorf(MethodRandomRegular, ErrTooFewVertices, "degree must be in [0,%d), got %d", n, deg)
		}
		if (n*deg)%2 != 0 {
			return builderErrorf(MethodRandomRegular, ErrTooFewVertices, "n*d must be even (n=%d, d=%d)", n, deg)
		}
		rng, err := cfg.requireRand(MethodRandomRegular)
		if err != nil {
			return err
		}

		stubCount := n * deg
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < deg; k++ {
				stubs = append(stubs, i)
			}
		}
		if stubCount == 0 {
			d.block(n)
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			seen := make(pairSet, stubCount/2)
			valid := true
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v || seen.has(u, v) {
					valid = false
					break
				}
				seen.add(u, v)
			}
			if !valid {
				continue
			}

			base := d.block(n)
			for i := 0; i < stubCount; i += 2 {
				d.link(base+stubs[i], base+stubs[i+1])
			}

			return nil
		}

		return builderErrorf(MethodRandomRegular, ErrConstructFailed,
			"no simple pairing after %d attempts", maxStubMatchingAttempts)
	}
}
