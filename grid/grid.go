package grid

import (
	"fmt"
	"math"
)

// conn8Offsets enumerate neighbors clockwise from north. The order is part
// of the public contract: ties in the planner resolve to the first minimal
// neighbor in this order.
var conn8Offsets = [Degree][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// conn4Offsets occupy the first four slots; the rest stay NoCell.
var conn4Offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a rectangular field of traversal costs addressed by row-major
// indices. Topology (dimensions, connectivity, neighbor tables) is immutable
// after construction; only per-cell costs may change, via SetCost.
type Grid struct {
	width, height int
	conn          Connectivity
	cost          []float64 // row-major: cost[y*width+x]
	nbrs          [][Degree]int
}

// New constructs a Grid from a non-empty, rectangular 2D cost slice.
// It deep-copies the input to ensure immutability of the caller's data and
// precomputes every cell's neighbor table.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCost if any cost is below MinCost and not Impassable.
// Complexity: O(W×H×d) time and memory.
func New(costs [][]float64, opts Options) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	flat := make([]float64, 0, w*h)
	for y, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, c := range row {
			if !validCost(c) {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost %v", ErrBadCost, x, y, c)
			}
			flat = append(flat, c)
		}
	}
	g := &Grid{
		width:  w,
		height: h,
		conn:   opts.Conn,
		cost:   flat,
	}
	g.buildNeighbors()

	return g, nil
}

// buildNeighbors precomputes the fixed-arity neighbor table of every cell.
// Absent neighbors keep the NoCell sentinel in their slot, so slot positions
// are stable regardless of borders.
func (g *Grid) buildNeighbors() {
	g.nbrs = make([][Degree]int, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			table := [Degree]int{NoCell, NoCell, NoCell, NoCell, NoCell, NoCell, NoCell, NoCell}
			if g.conn == Conn8 {
				for i, d := range conn8Offsets {
					if nx, ny := x+d[0], y+d[1]; g.InBounds(nx, ny) {
						table[i] = g.Index(nx, ny)
					}
				}
			} else {
				for i, d := range conn4Offsets {
					if nx, ny := x+d[0], y+d[1]; g.InBounds(nx, ny) {
						table[i] = g.Index(nx, ny)
					}
				}
			}
			g.nbrs[g.Index(x, y)] = table
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells (Width × Height).
func (g *Grid) Len() int { return len(g.cost) }

// Conn returns the connectivity the grid was built with.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller must ensure (x,y) is in bounds.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Contains reports whether idx addresses a cell of this grid.
func (g *Grid) Contains(idx int) bool {
	return idx >= 0 && idx < len(g.cost)
}

// Cost returns the traversal cost of the cell at idx.
// The caller must ensure idx is in range.
func (g *Grid) Cost(idx int) float64 {
	return g.cost[idx]
}

// SetCost overwrites the traversal cost of the cell at idx.
// Returns ErrCellIndex if idx is out of range, ErrBadCost if cost is below
// MinCost and not Impassable.
//
// When the grid is bound to a planner, route all cost changes through
// Planner.UpdateCost instead; mutating the grid directly leaves the
// planner's value store out of sync.
func (g *Grid) SetCost(idx int, cost float64) error {
	if !g.Contains(idx) {
		return fmt.Errorf("%w: %d", ErrCellIndex, idx)
	}
	if !validCost(cost) {
		return fmt.Errorf("%w: %v", ErrBadCost, cost)
	}
	g.cost[idx] = cost

	return nil
}

// Neighbors returns the neighbor table of the cell at idx: Degree slots in
// the fixed enumeration order, with NoCell in empty slots. The returned
// array is shared with the grid and must not be modified.
// The caller must ensure idx is in range.
func (g *Grid) Neighbors(idx int) *[Degree]int {
	return &g.nbrs[idx]
}

// CellAt returns a snapshot of the cell at idx: coordinates and current cost.
// Returns ErrCellIndex if idx is out of range.
func (g *Grid) CellAt(idx int) (Cell, error) {
	if !g.Contains(idx) {
		return Cell{}, fmt.Errorf("%w: %d", ErrCellIndex, idx)
	}
	x, y := g.Coordinate(idx)

	return Cell{X: x, Y: y, Cost: g.cost[idx]}, nil
}

// validCost accepts any finite cost >= MinCost, plus the Impassable sentinel.
func validCost(c float64) bool {
	if math.IsInf(c, 1) {
		return true
	}

	return !math.IsNaN(c) && c >= MinCost
}
