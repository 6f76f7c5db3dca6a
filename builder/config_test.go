// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	_, err := cfg.requireRand(MethodRandomSparse)
	require.ErrorIs(t, err, ErrNeedRandSource)
	require.Contains(t, err.Error(), MethodRandomSparse)

	// Nil options are skipped; later options override earlier ones.
	r := rand.New(rand.NewSource(3))
	cfg = newBuilderConfig(WithSeed(1), nil, WithRand(r))
	got, err := cfg.requireRand(MethodGrid)
	require.NoError(t, err)
	require.Same(t, r, got)

	a := newBuilderConfig(WithSeed(9)).rng.Int63()
	b := newBuilderConfig(WithSeed(9)).rng.Int63()
	require.Equal(t, a, b)

	require.Panics(t, func() { WithRand(nil) })
}

func TestValidators(t *testing.T) {
	t.Parallel()
	require.NoError(t, validateMin(MethodPath, "n", 2, MinPathNodes))
	require.ErrorIs(t, validateMin(MethodPath, "n", 1, MinPathNodes), ErrTooFewVertices)
	require.NoError(t, validateProbability(MethodRandomSparse, 0))
	require.NoError(t, validateProbability(MethodRandomSparse, 1))
	require.ErrorIs(t, validateProbability(MethodRandomSparse, 1.01), ErrInvalidProbability)
}

func TestPairSet(t *testing.T) {
	t.Parallel()
	s := make(pairSet)
	s.add(3, 1)
	require.True(t, s.has(1, 3))
	require.True(t, s.has(3, 1))
	s.remove(1, 3)
	require.False(t, s.has(3, 1))
}
