// Package dstar defines core types, configuration options, and sentinel
// errors for the D* Lite planner.
package dstar

import (
	"errors"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("dstar: grid is nil")

	// ErrCellIndex indicates a cell index outside the bound grid.
	ErrCellIndex = errors.New("dstar: cell index out of range")

	// ErrGoalUpdate indicates UpdateCost was called on the goal cell.
	// The goal's cost is never an edge weight into anything beyond itself,
	// so the call is rejected rather than silently ignored.
	ErrGoalUpdate = errors.New("dstar: cannot update cost of the goal cell")

	// ErrNoPath indicates the goal is unreachable from the start under the
	// current costs. This is an expected outcome, not an exceptional one.
	ErrNoPath = errors.New("dstar: no path from start to goal")

	// ErrIterationLimit indicates the defensive step cap was exceeded
	// before the plan converged. Distinct from ErrNoPath: the cap is a
	// safety valve, not a proof of unreachability.
	ErrIterationLimit = errors.New("dstar: iteration limit exceeded")

	// ErrBadMaxSteps indicates WithMaxSteps was given a non-positive cap.
	ErrBadMaxSteps = errors.New("dstar: MaxSteps must be positive")
)

// DefaultMaxSteps is the default bound on main-loop iterations per Replan.
const DefaultMaxSteps = 1000000

// Options configures the behavior of a Planner.
//
// MaxSteps – upper bound on consistency-engine iterations per Replan.
// Exceeding it surfaces as ErrIterationLimit. Must be > 0.
type Options struct {
	MaxSteps int // Maximum consistency-engine iterations per Replan
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithMaxSteps overrides the defensive iteration cap of the consistency
// engine. Must pass a positive value; zero or negative panics with
// ErrBadMaxSteps immediately (invalid configuration is programmer error,
// caught at the construction site rather than deferred to apply time).
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxSteps.Error())
	}

	return func(o *Options) {
		o.MaxSteps = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// MaxSteps = DefaultMaxSteps.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps}
}

// Key is the two-component open-list priority of a cell:
// K1 = min(g,rhs) + h(start,cell) + km, K2 = min(g,rhs).
// Keys order the open list lexicographically, smallest first; K2 breaks K1
// ties by raw cost estimate, which is what the main loop's termination
// argument rests on.
type Key struct {
	K1, K2 float64
}

// Less reports whether k orders strictly before o. Comparison is
// epsilon-tolerant on both components; see eq/less/greater.
func (k Key) Less(o Key) bool {
	if less(k.K1, o.K1) {
		return true
	}
	if greater(k.K1, o.K1) {
		return false
	}

	return less(k.K2, o.K2)
}

// Stats counts consistency-engine work done by the most recent Replan.
// The counters exist so callers (and tests) can observe how localized a
// repair was: after a single cost change they should be far below the
// counts of a from-scratch plan on the same grid.
type Stats struct {
	Expansions    int // open-list pops processed by the main loop
	KeyRefreshes  int // stale-key pops re-inserted with a fresh key
	VertexUpdates int // updateVertex calls
	Inserts       int // open-list insertions
	Removes       int // open-list removals (excluding pops)
	ReKeys        int // in-place open-list key updates
}
