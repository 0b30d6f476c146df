// Package dstar implements incremental shortest-path planning on cost grids
// using D* Lite (Koenig & Likhachev, "D* Lite", final optimized version).
//
// D* Lite maintains, for every touched cell, a solution estimate g and a
// one-step lookahead estimate rhs derived from neighbor g-values. A cell is
// consistent when the two agree; the set of inconsistent cells forms the
// open list, a priority queue ordered by a two-component key. Replanning
// drains the open list only as far as the start cell's key requires, so a
// localized cost change repairs the plan by touching a localized region
// instead of recomputing the whole field.
//
// What:
//
//   - Planner binds a *grid.Grid with a start and goal cell and keeps the
//     plan alive across arbitrarily many cost changes and start moves.
//   - UpdateCost changes one cell's traversal cost and re-queues exactly
//     the cells whose lookahead the change invalidated.
//   - Replan restores consistency and extracts the greedy minimum-cost path.
//   - Keys carry an accumulated offset (km) so moving the start never
//     requires re-keying the whole queue.
//
// Why:
//
//   - Agents in partially known terrain discover costs as they move.
//     From-scratch A* after every observation wastes nearly all of its
//     work; D* Lite reuses everything the change did not invalidate.
//
// Complexity:
//
//   - Replan: O(k log n) where k is the number of key changes caused since
//     the previous call and n the open-list size; worst case equals a full
//     Dijkstra sweep of the grid.
//   - UpdateCost: O(d²) rhs rebuilds plus O(d log n) queue operations,
//     d = neighbor arity (8).
//
// Errors:
//
//   - ErrNilGrid: nil grid handle passed to New.
//   - ErrCellIndex: a cell index outside the bound grid.
//   - ErrGoalUpdate: UpdateCost called on the goal cell.
//   - ErrNoPath: the goal is provably unreachable from the start.
//   - ErrIterationLimit: the defensive step cap tripped before convergence;
//     unlike ErrNoPath this is "gave up", not "proven unreachable".
//
// The planner is fully synchronous and not safe for concurrent use; a
// single instance owns its value store and open list, and borrows the grid.
// All cost mutation of a bound grid must go through UpdateCost.
package dstar
