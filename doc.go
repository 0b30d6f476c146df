// Package gridplan is an incremental path-planning toolkit for agents
// navigating grids whose traversal costs change while the mission runs.
//
// 🚀 What is gridplan?
//
//	A small, focused library built around D* Lite:
//		• grid:  cost-grid arena with stable row-major indices and
//		         precomputed 4- or 8-connected neighbor tables
//		• dstar: the planner — two-valued (g, rhs) consistency state,
//		         an indexed open list, and key offsets that survive a
//		         moving start without re-keying the queue
//
// ✨ Why choose gridplan?
//
//   - Incremental by construction – a cost change repairs the plan by
//     touching only the region it invalidated, never the whole field
//   - Honest failure modes – "no path exists" and "gave up at the
//     iteration cap" are distinct, inspectable errors
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed neighbor enumeration order governs every
//     tie-break, so plans are reproducible cell for cell
//
// Quick ASCII example:
//
//	S . . . .        S is the agent, G the goal, # impassable cells
//	. . # . .        discovered mid-mission. gridplan repairs the
//	. . # . .        current route around the wall instead of
//	. . # . .        replanning from scratch.
//	. . . . G
//
// Dive into the dstar package documentation for the algorithm contract,
// and grid for the arena the planner borrows.
//
//	go get github.com/katalvlaran/gridplan
package gridplan
