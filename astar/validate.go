package astar

import (
	"fmt"
)

// ValidatePath checks that every consecutive pair (a, b) of path satisfies:
// a is present in grid, b is listed by a's tile as a neighbor, b is present
// and walkable, and the connectivity option permits a → b.
// An empty path is rejected; a single-cell path only needs to be present.
// Violations are reported as ErrBrokenPath wrapped with the offending step.
func ValidatePath[C comparable, T Tile[C]](grid Grid[C, T], path []C, opts ...Option[C, T]) error {
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if grid == nil {
		return ErrNilGrid
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrBrokenPath)
	}
	if _, ok := grid.TryTile(path[0]); !ok {
		return fmt.Errorf("%w: %v not in grid", ErrBrokenPath, path[0])
	}

	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if !isNeighbor(grid.Tile(a).Neighbors(a), b) {
			return fmt.Errorf("%w: step %d %v→%v is not adjacent", ErrBrokenPath, i, a, b)
		}
		t, ok := grid.TryTile(b)
		if !ok {
			return fmt.Errorf("%w: step %d %v not in grid", ErrBrokenPath, i, b)
		}
		if !t.Walkable() {
			return fmt.Errorf("%w: step %d %v is not walkable", ErrBrokenPath, i, b)
		}
		if !cfg.Connectivity(a, t, b) {
			return fmt.Errorf("%w: step %d %v→%v is not connected", ErrBrokenPath, i, a, b)
		}
	}

	return nil
}

// PathCost sums weight over every step of path. The first cell contributes
// nothing, so a single-cell path costs 0. Cells must be present in grid.
func PathCost[C comparable, T Tile[C]](grid Grid[C, T], path []C, weight EdgeWeight[C, T]) (int64, error) {
	if grid == nil {
		return 0, ErrNilGrid
	}
	if weight == nil {
		return 0, ErrNilWeight
	}

	var total int64
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		from, ok := grid.TryTile(a)
		if !ok {
			return 0, fmt.Errorf("%w: step %d %v not in grid", ErrBrokenPath, i, a)
		}
		w := weight.Cost(from, a, b, grid)
		if w < 0 {
			return 0, fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, a, b, w)
		}
		total += w
	}

	return total, nil
}

func isNeighbor[C comparable](list []C, c C) bool {
	for _, n := range list {
		if n == c {
			return true
		}
	}

	return false
}
