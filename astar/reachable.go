package astar

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Reachable returns the set of cells reachable from start through walkable,
// present, connectivity-permitted transitions. start itself is always in
// the set. Only the Connectivity and InitialCapacity options are consulted.
//
// A goal is reachable from start exactly when Search(start, goal, …) finds a
// path under the same options, for any non-negative edge weight.
//
// Complexity: O(V + E) time, O(V) memory.
func Reachable[C comparable, T Tile[C]](grid Grid[C, T], start C, opts ...Option[C, T]) (mapset.Set[C], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return mapset.Set[C]{}, err
	}
	if grid == nil {
		return mapset.Set[C]{}, ErrNilGrid
	}
	if _, ok := grid.TryTile(start); !ok {
		return mapset.Set[C]{}, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	seen := mapset.New[C]()
	seen.Put(start)
	queue := make([]C, 0, cfg.InitialCapacity+1)
	queue = append(queue, start)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range grid.Tile(u).Neighbors(u) {
			if seen.Has(v) {
				continue
			}
			t, ok := grid.TryTile(v)
			if !ok || !t.Walkable() || !cfg.Connectivity(u, t, v) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}

	return seen, nil
}
