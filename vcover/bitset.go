// SPDX-License-Identifier: MIT
// Package vcover - edgeSet (fixed-width bitset over edge indices).
//
// Goals:
//   - Canonical key: two explorations that reach the same residual edge set
//     produce the same key regardless of branch order.
//   - Persistence: without returns a fresh set; the receiver is never modified.
//
// Complexity:
//   - first, without, key: O(m/64).

package vcover

import (
	"encoding/binary"
	"math/bits"
)

// edgeSet holds bit i for edge index i.
type edgeSet []uint64

// newFullEdgeSet returns the set {0, …, m-1}; bits past m stay clear.
func newFullEdgeSet(m int) edgeSet {
	s := make(edgeSet, (m+63)/64)
	for i := range s {
		s[i] = ^uint64(0)
	}
	if r := m % 64; r != 0 {
		s[len(s)-1] = (uint64(1) << r) - 1
	}

	return s
}

// first returns the lowest set index, or -1 when empty.
func (s edgeSet) first() int {
	for w, word := range s {
		if word != 0 {
			return w*64 + bits.TrailingZeros64(word)
		}
	}

	return -1
}

// without returns a copy of s with every index in idx cleared.
func (s edgeSet) without(idx []int) edgeSet {
	out := make(edgeSet, len(s))
	copy(out, s)
	for _, i := range idx {
		out[i>>6] &^= uint64(1) << (uint(i) & 63)
	}

	return out
}

// key serializes s; equal sets produce equal strings regardless of how they
// were reached.
func (s edgeSet) key() string {
	buf := make([]byte, 8*len(s))
	for i, word := range s {
		binary.LittleEndian.PutUint64(buf[8*i:], word)
	}

	return string(buf)
}
