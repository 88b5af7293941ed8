package astar

import (
	"fmt"
)

// Searcher runs repeated searches over one grid with fixed options.
// A Searcher holds no per-search state and may be shared between goroutines
// as long as the grid itself is not mutated.
type Searcher[C comparable, T Tile[C]] struct {
	grid Grid[C, T]
	opts []Option[C, T]
}

// New returns a Searcher over grid. The options are applied on every Search.
func New[C comparable, T Tile[C]](grid Grid[C, T], opts ...Option[C, T]) *Searcher[C, T] {
	return &Searcher[C, T]{grid: grid, opts: opts}
}

// Search finds a lowest-cost path from start to goal using weight.
// See the package-level Search for details.
func (s *Searcher[C, T]) Search(start, goal C, weight EdgeWeight[C, T]) (Result[C], error) {
	return Search(s.grid, start, goal, weight, s.opts...)
}

// Search computes a lowest-cost path from start to goal on grid, pricing
// each step with weight.
//
// Returns:
//
//   - Result with Found=true and Path=[start … goal] on success.
//   - Result with Found=false and a nil Path if goal is unreachable.
//     Unreachability is not an error.
//   - an error only for broken preconditions or policies.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. grid must be non-nil (ErrNilGrid).
//  3. weight must be non-nil (ErrNilWeight).
//  4. start must be present in grid (ErrStartNotFound).
//
// During the search a negative edge cost aborts with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O(E log E), E = number of relaxations performed.
//   - Space: O(V + E) for the cost/predecessor maps and the open set.
func Search[C comparable, T Tile[C]](
	grid Grid[C, T],
	start, goal C,
	weight EdgeWeight[C, T],
	opts ...Option[C, T],
) (Result[C], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result[C]{}, err
	}
	if grid == nil {
		return Result[C]{}, ErrNilGrid
	}
	if weight == nil {
		return Result[C]{}, ErrNilWeight
	}
	if _, ok := grid.TryTile(start); !ok {
		return Result[C]{}, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	r := &runner[C, T]{
		grid:    grid,
		weight:  weight,
		options: cfg,
		goal:    goal,
		prev:    make(map[C]C, cfg.InitialCapacity),
		cost:    make(map[C]int64, cfg.InitialCapacity),
		open:    newOpenSet[C](),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single search.
type runner[C comparable, T Tile[C]] struct {
	grid     Grid[C, T]       // read-only during the search
	weight   EdgeWeight[C, T] // edge pricing policy
	options  Options[C, T]    // connectivity and hooks
	goal     C
	prev     map[C]C     // cell → best known predecessor; start maps to itself
	cost     map[C]int64 // cell → best known accumulated cost g
	open     *openSet[C] // frontier keyed by f = g + h
	expanded int
}

// init seeds the frontier with start at priority 0.
func (r *runner[C, T]) init(start C) {
	r.prev[start] = start
	r.cost[start] = 0
	r.open.push(start, 0)
}

// process pops entries until the goal is reached or the frontier empties.
func (r *runner[C, T]) process() (Result[C], error) {
	for {
		item, ok := r.open.pop()
		if !ok {
			return Result[C]{Expanded: r.expanded}, nil
		}
		r.expanded++
		current := item.cell

		if current == r.goal {
			return Result[C]{
				Path:     r.reconstruct(),
				Cost:     r.cost[current],
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		r.options.OnExpand(current, r.cost[current])
		if err := r.relax(current); err != nil {
			return Result[C]{Expanded: r.expanded}, err
		}
	}
}

// relax examines each neighbor of current and records every strictly
// cheaper route found.
func (r *runner[C, T]) relax(current C) error {
	tile := r.grid.Tile(current)
	base := r.cost[current]

	for _, next := range tile.Neighbors(current) {
		nextTile, ok := r.grid.TryTile(next)
		if !ok {
			continue // outside the grid
		}
		if !nextTile.Walkable() {
			continue
		}
		if !r.options.Connectivity(current, nextTile, next) {
			continue
		}

		w := r.weight.Cost(tile, current, next, r.grid)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, current, next, w)
		}
		g := base + w

		if old, seen := r.cost[next]; seen && g >= old {
			continue
		}
		r.prev[next] = current
		r.cost[next] = g
		f := g + nextTile.Heuristic(next, r.goal)
		r.open.push(next, f)
		r.options.OnRelax(current, next, g, f)
	}

	return nil
}

// reconstruct walks predecessors from goal back to the cell that is its
// own predecessor (start) and returns the path in start→goal order.
func (r *runner[C, T]) reconstruct() []C {
	path := []C{r.goal}
	for at := r.goal; ; {
		p := r.prev[at]
		if p == at {
			break
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
