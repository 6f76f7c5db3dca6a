// SPDX-License-Identifier: MIT
// Package vcover - shared types: sentinel errors, Algorithm selector,
// Result/Stats, Options and the functional option constructors.
//
// Policy:
//   - Option constructors panic on meaningless arguments (programmer error).
//   - Solvers never panic on user input; they return the sentinels below.
//   - Options.Validate mirrors the constructor checks for hand-built structs.

package vcover

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors returned by solvers and helpers.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("vcover: graph is nil")

	// ErrNotACover indicates a vertex set leaves at least one edge uncovered.
	ErrNotACover = errors.New("vcover: not a vertex cover")

	// ErrVertexOutOfRange indicates a cover lists an id outside 0..n-1.
	ErrVertexOutOfRange = errors.New("vcover: vertex out of range")

	// ErrBoundTooTight indicates WithUpperBound(k) was smaller than the optimum.
	ErrBoundTooTight = errors.New("vcover: no cover within the given upper bound")

	// ErrTimeLimit indicates the search stopped on Options.TimeLimit.
	ErrTimeLimit = errors.New("vcover: time limit exceeded")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("vcover: unsupported algorithm")

	// ErrBadOption indicates an Options field outside its documented domain.
	ErrBadOption = errors.New("vcover: invalid option")

	// ErrSearchExhausted is the panic payload of IterativeDeepening when no
	// budget up to n-1 succeeds. It can only surface through a bug.
	ErrSearchExhausted = errors.New("vcover: iterative deepening exhausted every budget")
)

// Algorithm selects a solver for Solve.
type Algorithm int

const (
	// Approximation is the maximal-matching 2-approximation.
	Approximation Algorithm = iota
	// Backtracking is the exact DFS with upper-bound pruning.
	Backtracking
	// Memoized is the exact edge-branching recursion with a memo cache.
	Memoized
	// IterativeDeepeningDFS runs depth-limited searches for k = 0, 1, ….
	IterativeDeepeningDFS
	// Tabu is the flip-move tabu search heuristic.
	Tabu
	// BranchBound is the degree-branching search with a matching lower bound.
	BranchBound
	// SAT delegates to a pseudo-boolean optimizer.
	SAT
)

var algorithmNames = [...]string{
	Approximation:         "approx",
	Backtracking:          "backtracking",
	Memoized:              "memo",
	IterativeDeepeningDFS: "iddfs",
	Tabu:                  "tabu",
	BranchBound:           "bnb",
	SAT:                   "sat",
}

// String returns the short CLI name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Exact reports whether a proves optimality when it completes.
func (a Algorithm) Exact() bool {
	switch a {
	case Backtracking, Memoized, IterativeDeepeningDFS, BranchBound, SAT:
		return true
	default:
		return false
	}
}

// ParseAlgorithm maps a short name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, s := range algorithmNames {
		if s == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm: %q: %w", name, ErrUnsupportedAlgorithm)
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// Stats carries search counters. Fields a solver does not use stay zero.
type Stats struct {
	Nodes        int64 // search nodes expanded
	Pruned       int64 // subtrees cut by a bound
	CacheHits    int64 // memo lookups answered from cache
	CacheEntries int   // memo states stored
	Iterations   int   // tabu iterations performed
	Budget       int   // last k tried by iterative deepening
	Components   int   // components solved under WithDecompose
}

// add accumulates counters from a per-component run.
func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Pruned += o.Pruned
	s.CacheHits += o.CacheHits
	s.CacheEntries += o.CacheEntries
	s.Iterations += o.Iterations
	if o.Budget > s.Budget {
		s.Budget = o.Budget
	}
}

// Result is what every solver returns.
//
// Optimal is true only when an exact algorithm completed its search.
// Elapsed is measured by Solve and is informational.
type Result struct {
	Cover     Cover
	Size      int
	Optimal   bool
	Algorithm Algorithm
	Elapsed   time.Duration
	Stats     Stats
}

// TabuStart selects the initial solution of TabuSearch.
type TabuStart int

const (
	// StartApprox starts from the 2-approximation cover.
	StartApprox TabuStart = iota
	// StartFull starts from the set of all vertices.
	StartFull
)

// NoUpperBound disables the explicit upper bound.
const NoUpperBound = -1

// Default parameters.
const (
	DefaultTabuTenure      = 7
	DefaultMaxIterations   = 10000
	DefaultPenalty         = 1000
	DefaultStagnationLimit = 1000
)

// Options configures the solvers. Obtain a value with DefaultOptions and
// modify it through Option functions.
type Options struct {
	// UpperBound is an inclusive bound on the optimum used to seed exact
	// searches; NoUpperBound disables it.
	UpperBound int

	// Seeding seeds exact searches with the approximation cover. When false
	// the trivial cover (all non-isolated vertices) is used instead.
	Seeding bool

	// TabuTenure is the number of iterations a flipped vertex stays tabu.
	TabuTenure int

	// MaxIterations caps tabu iterations.
	MaxIterations int

	// StagnationLimit stops tabu after this many iterations without improving
	// the best cover; 0 disables the rule.
	StagnationLimit int

	// Penalty weighs uncovered edges in the tabu objective. The effective
	// penalty is max(Penalty, n+1), capped at MaxInt/(Δ+2) to rule out
	// overflow in move evaluation.
	Penalty int

	// Seed drives tie-breaking in tabu search; 0 selects the default seed.
	Seed int64

	// TabuStart picks the initial tabu solution.
	TabuStart TabuStart

	// TimeLimit bounds wall-clock time; 0 means unlimited.
	TimeLimit time.Duration

	// Decompose solves each connected component separately.
	Decompose bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		UpperBound:      NoUpperBound,
		Seeding:         true,
		TabuTenure:      DefaultTabuTenure,
		MaxIterations:   DefaultMaxIterations,
		StagnationLimit: DefaultStagnationLimit,
		Penalty:         DefaultPenalty,
		TabuStart:       StartApprox,
	}
}

// Validate reports the first field outside its domain, wrapped in ErrBadOption.
func (o Options) Validate() error {
	switch {
	case o.UpperBound < NoUpperBound:
		return fmt.Errorf("Options: UpperBound=%d: %w", o.UpperBound, ErrBadOption)
	case o.TabuTenure < 1:
		return fmt.Errorf("Options: TabuTenure=%d: %w", o.TabuTenure, ErrBadOption)
	case o.MaxIterations < 1:
		return fmt.Errorf("Options: MaxIterations=%d: %w", o.MaxIterations, ErrBadOption)
	case o.StagnationLimit < 0:
		return fmt.Errorf("Options: StagnationLimit=%d: %w", o.StagnationLimit, ErrBadOption)
	case o.Penalty < 1:
		return fmt.Errorf("Options: Penalty=%d: %w", o.Penalty, ErrBadOption)
	case o.TabuStart != StartApprox && o.TabuStart != StartFull:
		return fmt.Errorf("Options: TabuStart=%d: %w", o.TabuStart, ErrBadOption)
	case o.TimeLimit < 0:
		return fmt.Errorf("Options: TimeLimit=%v: %w", o.TimeLimit, ErrBadOption)
	}

	return nil
}

// Option mutates Options.
type Option func(*Options)

// WithUpperBound sets an inclusive bound on the optimum. Panics if k < 0.
func WithUpperBound(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("vcover: WithUpperBound(%d): bound must be ≥ 0", k))
	}

	return func(o *Options) { o.UpperBound = k }
}

// WithoutSeeding starts exact searches from the trivial cover.
func WithoutSeeding() Option {
	return func(o *Options) { o.Seeding = false }
}

// WithTabuTenure sets the tabu tenure. Panics if t < 1.
func WithTabuTenure(t int) Option {
	if t < 1 {
		panic(fmt.Sprintf("vcover: WithTabuTenure(%d): tenure must be ≥ 1", t))
	}

	return func(o *Options) { o.TabuTenure = t }
}

// WithMaxIterations caps tabu iterations. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("vcover: WithMaxIterations(%d): must be ≥ 1", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithStagnationLimit sets the no-improvement stop; 0 disables it. Panics if n < 0.
func WithStagnationLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("vcover: WithStagnationLimit(%d): must be ≥ 0", n))
	}

	return func(o *Options) { o.StagnationLimit = n }
}

// WithPenalty sets the tabu infeasibility penalty. Panics if p < 1.
func WithPenalty(p int) Option {
	if p < 1 {
		panic(fmt.Sprintf("vcover: WithPenalty(%d): must be ≥ 1", p))
	}

	return func(o *Options) { o.Penalty = p }
}

// WithSeed sets the RNG seed; 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTabuStart selects the initial tabu solution. Panics on unknown values.
func WithTabuStart(s TabuStart) Option {
	if s != StartApprox && s != StartFull {
		panic(fmt.Sprintf("vcover: WithTabuStart(%d): unknown start", s))
	}

	return func(o *Options) { o.TabuStart = s }
}

// WithTimeLimit bounds wall-clock time; 0 means unlimited. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("vcover: WithTimeLimit(%v): must be ≥ 0", d))
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithDecompose solves each connected component independently.
func WithDecompose() Option {
	return func(o *Options) { o.Decompose = true }
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
