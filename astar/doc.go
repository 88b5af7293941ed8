// Package astar provides a generic A* shortest-path search over grids of
// tiles: square, hex, or any other tessellation that can answer a few
// questions about its cells.
//
// Overview:
//
//   - A cell is any comparable Go value (typically a small coordinate struct).
//   - A Tile reports whether it is walkable, lists the candidate neighbors of
//     its own cell, and estimates the remaining cost to a goal (the heuristic).
//   - A Grid maps cells to tiles, distinguishing valid cells (Tile) from
//     arbitrary probes that may fall outside the grid (TryTile).
//   - A Connectivity predicate may veto individual transitions, e.g. diagonal
//     steps that would clip through blocked corners.
//   - An EdgeWeight policy prices each transition with full access to the grid.
//
// Search combines them into a best-first search keyed by f = g + h and returns
// an optimal waypoint path, or reports that the goal is unreachable.
//
// Key features:
//
//   - Generic over cell and tile types; written once for every topology.
//   - Lazy frontier: duplicate open-set entries are tolerated instead of a
//     closed set or decrease-key.
//   - Deterministic tie-break: equal priorities pop in push order (FIFO).
//   - Hooks (WithOnExpand, WithOnRelax) for tracing and debug overlays.
//   - Reachable, ValidatePath and PathCost helpers for checking results.
//
// Performance and complexity:
//
//   - Time:  O(E log E) where E is the number of improving relaxations.
//   - Space: O(V + E) for the cost and predecessor maps plus the open set.
//
// Optimality:
//
//	Returned paths are minimum-cost when every edge weight is non-negative and
//	every tile heuristic is admissible and consistent. Neither property is
//	verified by the search; negative weights are detected when encountered.
//	Costs are int64 sums; overflow on extreme weights is not detected.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil Grid.
//   - ErrNilWeight:       nil EdgeWeight.
//   - ErrStartNotFound:   start cell is not present in the grid.
//   - ErrNegativeWeight:  the weight policy returned a negative cost.
//   - ErrOptionViolation: an Option received an invalid argument.
//   - ErrBrokenPath:      returned by ValidatePath/PathCost for illegal steps.
//
// Unreachability is not an error: Search returns Result.Found == false.
// The start cell must be present in the grid, but its walkability is not
// checked. An absent or unwalkable goal is simply unreachable.
//
// Thread safety:
//
//   - Every call allocates its own open set and maps; nothing persists between
//     calls. Concurrent searches over one grid are safe while the grid is not
//     mutated. There is no cancellation inside a search; bound the work from
//     the outside if required.
//
// Example:
//
//	res, err := astar.Search[squaregrid.Cell, *squaregrid.Tile](
//	    g, squaregrid.Cell{X: 0, Y: 0}, squaregrid.Cell{X: 3, Y: 0},
//	    squaregrid.UniformCost(1),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
