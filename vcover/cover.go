// SPDX-License-Identifier: MIT
// Package vcover - Cover value type and the Verify checker.
//
// Every solver result passes through Verify before Solve returns it.

package vcover

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvcover/core"
)

// Cover is a sorted, duplicate-free set of vertex ids.
type Cover []int

// NewCover sorts vs and drops duplicates. The input slice is not modified.
func NewCover(vs ...int) Cover {
	out := make(Cover, len(vs))
	copy(out, vs)
	sort.Ints(out)

	w := 0
	for i, v := range out {
		if i > 0 && v == out[w-1] {
			continue
		}
		out[w] = v
		w++
	}

	return out[:w]
}

// coverFromMask collects the set positions of mask in ascending order.
func coverFromMask(mask []bool) Cover {
	out := make(Cover, 0, len(mask))
	for v, in := range mask {
		if in {
			out = append(out, v)
		}
	}

	return out
}

// Len returns |c|.
func (c Cover) Len() int { return len(c) }

// Contains reports whether v is in c. Complexity: O(log |c|).
func (c Cover) Contains(v int) bool {
	i := sort.SearchInts(c, v)

	return i < len(c) && c[i] == v
}

// Mask returns a length-n membership mask. Ids outside 0..n-1 are ignored.
func (c Cover) Mask(n int) []bool {
	mask := make([]bool, n)
	for _, v := range c {
		if v >= 0 && v < n {
			mask[v] = true
		}
	}

	return mask
}

// Clone returns an independent copy.
func (c Cover) Clone() Cover {
	if c == nil {
		return nil
	}
	out := make(Cover, len(c))
	copy(out, c)

	return out
}

// Verify checks that c is a vertex cover of g.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - ErrVertexOutOfRange (wrapped) for ids outside 0..n-1.
//   - ErrNotACover (wrapped with the first uncovered edge) otherwise.
//
// Complexity: O(|c| + m).
func Verify(g *core.Graph, c Cover) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.Order()
	for _, v := range c {
		if v < 0 || v >= n {
			return fmt.Errorf("Verify: vertex %d with n=%d: %w", v, n, ErrVertexOutOfRange)
		}
	}
	mask := c.Mask(n)
	for _, e := range g.EdgesUnsafe() {
		if !mask[e.U] && !mask[e.V] {
			return fmt.Errorf("Verify: edge %v uncovered: %w", e, ErrNotACover)
		}
	}

	return nil
}
