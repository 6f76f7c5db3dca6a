// SPDX-License-Identifier: MIT
// Package vcover - budget (sparse cancellation checks shared by every search).
//
// A budget is polled on each discrete step (node expansion, tabu iteration)
// but only consults the clock and the context every 1024 steps, plus on the
// very first step so an already-cancelled context stops immediately.
//
// Goals:
//   - Overhead: one increment and mask test on the hot path.
//   - Sticky outcome: once exceeded, err stays set and every later poll is true.

package vcover

import (
	"context"
	"time"
)

// budgetCheckMask selects every 1024th step for a real check.
const budgetCheckMask = 1023

// budget tracks the time limit and context of one Solve call.
type budget struct {
	ctx         context.Context
	deadline    time.Time
	useDeadline bool
	steps       uint64 // polls so far
	err         error  // sticky once set
}

func newBudget(ctx context.Context, limit time.Duration) *budget {
	if ctx == nil {
		ctx = context.Background()
	}
	b := &budget{ctx: ctx}
	if limit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(limit)
	}

	return b
}

// exceeded reports whether the search must stop. Once true it stays true and
// b.err holds ErrTimeLimit or the context error.
func (b *budget) exceeded() bool {
	if b.err != nil {
		return true
	}
	b.steps++
	if b.steps&budgetCheckMask != 1 {
		return false
	}

	return b.check()
}

// check consults the context and the clock on every call.
func (b *budget) check() bool {
	if b.err != nil {
		return true
	}
	if err := b.ctx.Err(); err != nil {
		b.err = err
		return true
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		b.err = ErrTimeLimit
		return true
	}

	return false
}
