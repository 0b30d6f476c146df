// Package grid provides the cost-grid arena the planner operates on:
// a rectangular field of traversal costs addressed by stable row-major
// indices, with precomputed fixed-arity neighbor tables.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 cost field (deep-copied on build).
//   - Cells are addressed by row-major indices; Index and Coordinate convert
//     both ways in O(1).
//   - Each cell carries a precomputed [8]int neighbor table in a stable
//     enumeration order (N, NE, E, SE, S, SW, W, NW for Conn8; N, E, S, W
//     for Conn4), with NoCell filling absent or out-of-bounds slots.
//   - A cell whose cost equals Impassable cannot be traversed.
//
// Why:
//
//   - Index arenas sidestep the lifetime and aliasing questions of a
//     pointer-linked cell graph: the planner holds plain ints, and the
//     neighbor topology is immutable after construction.
//   - The enumeration order is part of the contract — planners break ties
//     by the first minimal neighbor, so the order is observable.
//
// Complexity:
//
//   - New:                O(W×H×d) time, O(W×H×d) memory (d = 4 or 8).
//   - Index, Coordinate, Cost, Neighbors, InBounds: O(1).
//
// Options:
//
//   - Options.Conn: Conn4 (orthogonal) or Conn8 (including diagonals).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCost: a cost is below MinCost (and is not Impassable).
//   - ErrCellIndex: a cell index is out of range.
//
// Writer discipline: a Grid bound to a dstar.Planner must only be mutated
// through Planner.UpdateCost, which keeps the planner's internal state in
// step with the cost field. SetCost exists for setup before binding.
package grid
