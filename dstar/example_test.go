// File: dstar/example_test.go
package dstar_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/gridplan/dstar"
	"github.com/katalvlaran/gridplan/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: first plan on a uniform grid
////////////////////////////////////////////////////////////////////////////////

// ExamplePlanner_Replan plans corner to corner across a 3×3 unit-cost grid.
// Scenario:
//
//   - All cells cost 1, diagonal steps scale by sqrt2.
//   - The pure diagonal route is strictly cheapest: 2·sqrt2 ≈ 2.8284.
//
// Complexity: O(n log n) for the first sweep over n touched cells.
func ExamplePlanner_Replan() {
	g, err := grid.New([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, grid.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	p, err := dstar.New(g, g.Index(0, 0), g.Index(2, 2))
	if err != nil {
		log.Fatal(err)
	}
	if err = p.Replan(); err != nil {
		log.Fatal(err)
	}

	fmt.Print("path:")
	for _, idx := range p.Path() {
		x, y := g.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Printf("\ncost: %.4f\n", p.PathCost())

	// Output:
	// path: (0,0) (1,1) (2,2)
	// cost: 2.8284
}

////////////////////////////////////////////////////////////////////////////////
// Example: incremental repair after a cost change
////////////////////////////////////////////////////////////////////////////////

// ExamplePlanner_UpdateCost blocks the center cell after the first plan and
// repairs the route incrementally instead of replanning from scratch.
// Scenario:
//
//   - Same 3×3 grid; (1,1) becomes impassable at runtime.
//   - The repaired route hugs the blocked cell: cost 2+sqrt2 ≈ 3.4142.
func ExamplePlanner_UpdateCost() {
	g, err := grid.New([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, grid.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	p, err := dstar.New(g, g.Index(0, 0), g.Index(2, 2))
	if err != nil {
		log.Fatal(err)
	}
	if err = p.Replan(); err != nil {
		log.Fatal(err)
	}

	if err = p.UpdateCost(g.Index(1, 1), grid.Impassable); err != nil {
		log.Fatal(err)
	}
	if err = p.Replan(); err != nil {
		log.Fatal(err)
	}

	fmt.Print("path:")
	for _, idx := range p.Path() {
		x, y := g.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Printf("\ncost: %.4f\n", p.PathCost())

	// Output:
	// path: (0,0) (1,0) (2,1) (2,2)
	// cost: 3.4142
}
