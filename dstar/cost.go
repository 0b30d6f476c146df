package dstar

import (
	"math"

	"github.com/katalvlaran/gridplan/grid"
)

// sqrt2 scales diagonal steps; also the octile heuristic's diagonal weight.
var sqrt2 = math.Sqrt(2)

// EdgeCost returns the cost of traversing the edge between cells a and b of
// g. If either endpoint is impassable the edge cost is +Inf. Otherwise the
// cost is the mean of the two cell costs, scaled by sqrt(2) when a and b
// are diagonal neighbors (both coordinate deltas nonzero).
//
// The metric is symmetric: EdgeCost(g, a, b) == EdgeCost(g, b, a).
// Both indices must be in range.
func EdgeCost(g *grid.Grid, a, b int) float64 {
	ca, cb := g.Cost(a), g.Cost(b)
	if isInf(ca) || isInf(cb) {
		return math.Inf(1)
	}
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	scale := 1.0
	if ax != bx && ay != by {
		scale = sqrt2
	}

	return scale * (ca + cb) / 2
}

// Heuristic estimates the distance between cells a and b of g, matching the
// grid's connectivity: octile distance for Conn8, Manhattan distance for
// Conn4. Both are admissible and consistent for the EdgeCost metric as long
// as every cell cost is at least grid.MinCost, which grid construction
// enforces — the planner's termination and optimality arguments rest on
// this pairing.
func Heuristic(g *grid.Grid, a, b int) float64 {
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	if g.Conn() == grid.Conn4 {
		return dx + dy
	}
	dmin, dmax := dx, dy
	if dmin > dmax {
		dmin, dmax = dmax, dmin
	}

	return (sqrt2-1)*dmin + dmax
}
