// Package grid defines core types, options, and sentinel errors
// for the cost-grid arena used by the gridplan planner.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCost indicates a traversal cost below MinCost that is not Impassable.
	ErrBadCost = errors.New("grid: traversal cost must be >= MinCost or Impassable")
	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("grid: cell index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Degree is the fixed arity of every neighbor table. Conn4 grids leave the
// trailing four slots at NoCell.
const Degree = 8

// NoCell marks an empty neighbor slot (absent or out-of-bounds neighbor).
const NoCell = -1

// MinCost is the smallest admissible traversal cost. Keeping per-cell costs
// at or above 1 is what makes the planner's octile heuristic admissible.
const MinCost = 1.0

// Impassable is the sentinel traversal cost of a cell that cannot be entered.
var Impassable = math.Inf(1)

// Cell describes a single grid cell: its coordinates and current cost.
type Cell struct {
	X, Y int     // Coordinates within the grid
	Cost float64 // Traversal cost at (X, Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns an Options with default settings:
// Conn=Conn8, the planner's native neighborhood.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}
