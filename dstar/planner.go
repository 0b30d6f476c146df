package dstar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridplan/grid"
)

// gRhs is the value-store entry of one touched cell: the solution estimate g
// and the one-step lookahead rhs. Untouched cells are implicitly (+Inf, +Inf).
type gRhs struct {
	g, rhs float64
}

// Planner maintains a shortest path from a movable start cell to a fixed
// goal cell on a borrowed *grid.Grid whose costs change at runtime.
//
// A Planner exclusively owns its value store, open list, and path; the grid
// is borrowed, and every cost change of a bound grid must go through
// UpdateCost. A Planner is not safe for concurrent use.
type Planner struct {
	grid *grid.Grid

	start, goal int
	last        int     // start as of the previous key-offset update
	km          float64 // accumulated key offset; only ever grows

	values map[int]gRhs
	open   *openList
	path   []int

	opts  Options
	stats Stats
}

// New constructs a Planner bound to g, planning from start to goal
// (row-major cell indices). It pins rhs(goal) to zero and seeds the open
// list with the goal, so the first Replan performs the initial sweep.
// Returns ErrNilGrid or ErrCellIndex on invalid input.
func New(g *grid.Grid, start, goal int, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Planner{grid: g, opts: cfg}
	if err := p.Reset(start, goal); err != nil {
		return nil, err
	}

	return p, nil
}

// Reset re-initializes the planner for a new mission on the same grid:
// clears the value store, open list, key offset, and path, then seeds the
// new goal. This is the sanctioned way to rebind the goal; SetGoal alone
// deliberately does not re-seed.
// Returns ErrCellIndex if either index is out of range.
func (p *Planner) Reset(start, goal int) error {
	if err := p.checkCell(start); err != nil {
		return err
	}
	if err := p.checkCell(goal); err != nil {
		return err
	}
	p.start, p.goal, p.last = start, goal, start
	p.km = 0
	p.values = make(map[int]gRhs)
	p.open = newOpenList()
	p.path = nil
	p.stats = Stats{}

	// rhs(goal) = 0; the goal starts inconsistent and drives the sweep.
	p.values[goal] = gRhs{g: math.Inf(1), rhs: 0}
	p.open.insert(goal, p.key(goal))

	return nil
}

// Start returns the current start cell.
func (p *Planner) Start() int { return p.start }

// SetStart moves the start cell (the agent advanced). The key offset is
// brought up to date lazily by the next UpdateCost, exactly as the open
// list's keys require.
// Returns ErrCellIndex if u is out of range.
func (p *Planner) SetStart(u int) error {
	if err := p.checkCell(u); err != nil {
		return err
	}
	p.start = u

	return nil
}

// Goal returns the current goal cell.
func (p *Planner) Goal() int { return p.goal }

// SetGoal reassigns the goal cell without re-seeding the open list; planner
// state computed for the previous goal remains in place. Callers that truly
// change missions should use Reset instead.
// Returns ErrCellIndex if u is out of range.
func (p *Planner) SetGoal(u int) error {
	if err := p.checkCell(u); err != nil {
		return err
	}
	p.goal = u

	return nil
}

// Grid returns the borrowed grid handle.
func (p *Planner) Grid() *grid.Grid { return p.grid }

// Stats returns the consistency-engine counters of the most recent Replan.
func (p *Planner) Stats() Stats { return p.stats }

// Path returns a copy of the path produced by the last successful Replan,
// ordered from start to goal. It is empty before the first success and
// after a failed Replan.
func (p *Planner) Path() []int {
	out := make([]int, len(p.path))
	copy(out, p.path)

	return out
}

// PathCost returns the total edge cost of the stored path, zero for a
// trivial or empty path.
func (p *Planner) PathCost() float64 {
	var sum float64
	for i := 1; i < len(p.path); i++ {
		sum += EdgeCost(p.grid, p.path[i-1], p.path[i])
	}

	return sum
}

// UpdateCost changes the traversal cost of cell u and re-queues exactly the
// cells whose lookahead the change invalidated: u itself and its neighbors,
// whose incident edges all carry u's cost. The accumulated key offset
// advances by the heuristic distance the start has moved since the previous
// update, keeping every queued key a valid lower bound without re-keying
// the queue.
//
// Updating the goal cell is rejected with ErrGoalUpdate: the goal's cost is
// never an edge weight into anything beyond itself, and silently ignoring
// the call would mask a caller bug. Returns ErrCellIndex for an out-of-range
// cell and grid.ErrBadCost for an invalid cost; planner state is untouched
// on any error.
func (p *Planner) UpdateCost(u int, cost float64) error {
	if err := p.checkCell(u); err != nil {
		return err
	}
	if u == p.goal {
		return ErrGoalUpdate
	}
	if err := p.grid.SetCost(u, cost); err != nil {
		return err
	}

	p.km += Heuristic(p.grid, p.last, p.start)
	p.last = p.start

	p.materialize(u)
	p.setRhs(u, p.minNeighborRhs(u))
	p.updateVertex(u)
	for _, n := range p.grid.Neighbors(u) {
		if n == grid.NoCell {
			continue
		}
		if n != p.goal {
			p.setRhs(n, p.minNeighborRhs(n))
		}
		p.updateVertex(n)
	}

	return nil
}

// Replan restores global consistency and extracts a fresh start→goal path.
// Returns nil on success, ErrNoPath when the goal is provably unreachable,
// ErrIterationLimit when the defensive step cap tripped. The stored path is
// cleared on every call and repopulated only on success.
func (p *Planner) Replan() error {
	p.path = p.path[:0]
	p.stats = Stats{}
	if err := p.computeShortestPath(); err != nil {
		return err
	}

	return p.extractPath()
}

// computeShortestPath is the consistency engine: it pops inconsistent cells
// in key order and restores each one until the start cell is consistent and
// no queued key orders before the start's. Loop invariant: a cell is queued
// iff g != rhs, at its current key or one queued before km last grew.
func (p *Planner) computeShortestPath() error {
	steps := 0
	for {
		top, ok := p.open.peek()
		startConsistent := eq(p.g(p.start), p.rhs(p.start))
		if (!ok || !top.Less(p.key(p.start))) && startConsistent {
			return nil
		}
		if !ok {
			// Open list drained with the start still inconsistent:
			// unreachable, and provably so.
			return ErrNoPath
		}
		if steps++; steps > p.opts.MaxSteps {
			return ErrIterationLimit
		}

		u, kOld, _ := p.open.pop()
		p.stats.Expansions++

		if kNew := p.key(u); kOld.Less(kNew) {
			// Stale key: the start (and km) moved since u was queued.
			p.open.insert(u, kNew)
			p.stats.KeyRefreshes++

			continue
		}

		if greater(p.g(u), p.rhs(u)) {
			// Overconsistent: u's estimate improved. Fix g and let the
			// improvement flow into each neighbor's lookahead.
			gu := p.rhs(u)
			p.setG(u, gu)
			for _, n := range p.grid.Neighbors(u) {
				if n == grid.NoCell {
					continue
				}
				if n != p.goal {
					p.setRhs(n, math.Min(p.rhs(n), EdgeCost(p.grid, n, u)+gu))
				}
				p.updateVertex(n)
			}

			continue
		}

		// Underconsistent: a supporting edge got worse. Invalidate g,
		// rebuild u's lookahead from its neighbors' own g-values, and
		// rebuild the lookahead of every neighbor whose rhs leaned on
		// u's old estimate. Skipping that last rebuild leaves neighbors
		// looking consistent at values the invalidation just orphaned.
		gOld := p.g(u)
		p.setG(u, math.Inf(1))
		if u != p.goal {
			p.setRhs(u, p.minNeighborRhs(u))
		}
		p.updateVertex(u)
		for _, n := range p.grid.Neighbors(u) {
			if n == grid.NoCell {
				continue
			}
			if n != p.goal && eq(p.rhs(n), EdgeCost(p.grid, n, u)+gOld) {
				p.setRhs(n, p.minNeighborRhs(n))
			}
			p.updateVertex(n)
		}
	}
}

// updateVertex re-establishes the open-list/consistency bijection for one
// cell after its g or rhs changed: inconsistent cells are queued at their
// current key, consistent cells are unqueued.
func (p *Planner) updateVertex(u int) {
	p.stats.VertexUpdates++
	inconsistent := !eq(p.g(u), p.rhs(u))
	queued := p.open.contains(u)
	switch {
	case inconsistent && queued:
		p.open.update(u, p.key(u))
		p.stats.ReKeys++
	case inconsistent:
		p.open.insert(u, p.key(u))
		p.stats.Inserts++
	case queued:
		p.open.remove(u)
		p.stats.Removes++
	}
}

// extractPath greedily walks from start to goal along minimum-cost
// successors, first minimal neighbor in enumeration order winning ties.
// Walk length is bounded by the cell count; exceeding it means the walk is
// cycling on stale estimates and surfaces as ErrIterationLimit.
func (p *Planner) extractPath() error {
	cur := p.start
	p.path = append(p.path, cur)
	for cur != p.goal {
		if isInf(p.g(cur)) {
			p.path = p.path[:0]

			return ErrNoPath
		}
		next, ok := p.minSuccessor(cur)
		if !ok {
			p.path = p.path[:0]

			return ErrNoPath
		}
		cur = next
		p.path = append(p.path, cur)
		if len(p.path) > p.grid.Len() {
			p.path = p.path[:0]

			return ErrIterationLimit
		}
	}

	return nil
}

// minSuccessor returns the neighbor of u minimizing EdgeCost(u,n) + g(n),
// skipping impassable edges and cells with no finite estimate. Strict
// less-than keeps the first minimal neighbor in enumeration order.
func (p *Planner) minSuccessor(u int) (int, bool) {
	best := grid.NoCell
	bestCost := math.Inf(1)
	for _, n := range p.grid.Neighbors(u) {
		if n == grid.NoCell {
			continue
		}
		c := EdgeCost(p.grid, u, n)
		gn := p.g(n)
		if isInf(c) || isInf(gn) {
			continue
		}
		if c += gn; less(c, bestCost) {
			bestCost = c
			best = n
		}
	}

	return best, best != grid.NoCell
}

// minNeighborRhs rebuilds a cell's one-step lookahead from scratch:
// min over neighbors s of EdgeCost(u,s) + g(s), +Inf when no neighbor
// offers a finite route. Each neighbor's own g-value is used — never u's.
func (p *Planner) minNeighborRhs(u int) float64 {
	min := math.Inf(1)
	for _, s := range p.grid.Neighbors(u) {
		if s == grid.NoCell {
			continue
		}
		c := EdgeCost(p.grid, u, s)
		if isInf(c) {
			continue
		}
		if c += p.g(s); less(c, min) {
			min = c
		}
	}

	return min
}

// key computes u's open-list priority from its current values, the
// heuristic distance to the current start, and the accumulated offset.
func (p *Planner) key(u int) Key {
	m := math.Min(p.g(u), p.rhs(u))

	return Key{K1: m + Heuristic(p.grid, p.start, u) + p.km, K2: m}
}

// g reads u's solution estimate; +Inf until touched.
func (p *Planner) g(u int) float64 {
	if e, ok := p.values[u]; ok {
		return e.g
	}

	return math.Inf(1)
}

// rhs reads u's lookahead estimate; pinned to zero for the goal, +Inf until
// touched otherwise.
func (p *Planner) rhs(u int) float64 {
	if u == p.goal {
		return 0
	}
	if e, ok := p.values[u]; ok {
		return e.rhs
	}

	return math.Inf(1)
}

// setG writes u's solution estimate, materializing the entry if needed.
func (p *Planner) setG(u int, v float64) {
	p.materialize(u)
	e := p.values[u]
	e.g = v
	p.values[u] = e
}

// setRhs writes u's lookahead estimate. Writes to the goal are no-ops:
// rhs(goal) is pinned to zero for the planner's lifetime.
func (p *Planner) setRhs(u int, v float64) {
	if u == p.goal {
		return
	}
	p.materialize(u)
	e := p.values[u]
	e.rhs = v
	p.values[u] = e
}

// materialize lazily creates u's value-store entry at (+Inf, +Inf).
func (p *Planner) materialize(u int) {
	if _, ok := p.values[u]; !ok {
		p.values[u] = gRhs{g: math.Inf(1), rhs: math.Inf(1)}
	}
}

// checkCell validates a cell index against the bound grid.
func (p *Planner) checkCell(u int) error {
	if !p.grid.Contains(u) {
		return fmt.Errorf("%w: %d", ErrCellIndex, u)
	}

	return nil
}
