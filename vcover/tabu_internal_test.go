// SPDX-License-Identifier: MIT

package vcover

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/core"
)

// star3 is K_{1,3} with center 0.
func star3() *core.Graph {
	return core.MustNewGraph(4, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}})
}

func tabuOptions(tenure int) Options {
	o := DefaultOptions()
	o.TabuTenure = tenure
	o.Seed = 1

	return o
}

func TestEffectivePenalty(t *testing.T) {
	require.Equal(t, 11, effectivePenalty(1, 10, 3))
	require.Equal(t, 1000, effectivePenalty(1000, 10, 3))
	require.Equal(t, math.MaxInt/5, effectivePenalty(math.MaxInt, 10, 3))

	// P·Δ stays representable at the cap.
	p := effectivePenalty(math.MaxInt, 10, 3)
	require.Positive(t, p*3)
	require.Greater(t, p, 10)
}

func TestTabuStep_TenureCountdown(t *testing.T) {
	s := newTabuSearcher(star3(), make([]bool, 4), tabuOptions(2))
	require.Equal(t, 4, s.bestSize, "infeasible start falls back to all vertices")

	// Adding the center uncovers nothing and is the unique best move.
	move, improved := s.step()
	require.Equal(t, 0, move)
	require.True(t, improved)
	require.Equal(t, 1, s.bestSize)
	require.Equal(t, map[int]int{0: 2}, s.tabu)

	// Only leaf insertions are admissible now.
	m1, improved := s.step()
	require.Contains(t, []int{1, 2, 3}, m1)
	require.False(t, improved)
	require.Equal(t, map[int]int{0: 1, m1: 2}, s.tabu)

	_, size, unc := s.st.delta(0, s.penalty)
	require.False(t, s.admissible(0, size, unc))

	m2, _ := s.step()
	require.Contains(t, []int{1, 2, 3}, m2)
	require.NotEqual(t, m1, m2)
	// The center was forbidden for exactly two iterations and has expired.
	require.Equal(t, map[int]int{m1: 1, m2: 2}, s.tabu)
	_, size, unc = s.st.delta(0, s.penalty)
	require.True(t, s.admissible(0, size, unc))
	require.Equal(t, 1, s.bestSize)
}

func TestTabuStep_Aspiration(t *testing.T) {
	start := func() []bool { return []bool{true, true, false, false} }

	// {0,1} is feasible; dropping the tabu leaf 1 gives a strictly smaller cover.
	s := newTabuSearcher(star3(), start(), tabuOptions(2))
	require.Equal(t, 2, s.bestSize)
	s.tabu[1] = 2

	move, improved := s.step()
	require.Equal(t, 1, move)
	require.True(t, improved)
	require.Equal(t, 1, s.bestSize)
	require.Equal(t, []bool{true, false, false, false}, s.best)
	require.Equal(t, map[int]int{1: 2}, s.tabu, "the aspirated move restarts at full tenure")

	// Not strictly smaller than the best: the tabu flip stays forbidden.
	s = newTabuSearcher(star3(), start(), tabuOptions(2))
	s.bestSize = 1
	s.tabu[1] = 2

	move, improved = s.step()
	require.Contains(t, []int{2, 3}, move)
	require.False(t, improved)
	require.Equal(t, map[int]int{1: 1, move: 2}, s.tabu)
}

func TestTabuStep_NoAdmissibleMove(t *testing.T) {
	g := core.MustNewGraph(2, []core.Edge{{U: 0, V: 1}})
	s := newTabuSearcher(g, []bool{true, false}, tabuOptions(5))
	s.tabu[0], s.tabu[1] = 5, 5

	move, improved := s.step()
	require.Equal(t, -1, move)
	require.False(t, improved)
	require.Equal(t, map[int]int{0: 5, 1: 5}, s.tabu, "no aging without a move")
	require.Equal(t, []bool{true, false}, s.st.in)
}
