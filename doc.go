// Package tilepath is a small toolkit for A* pathfinding over tile maps:
// square grids, hex grids, or any board you describe yourself.
//
// What is inside?
//
//   - astar/      generic A* search over Grid/Tile contracts, plus
//     Reachable, ValidatePath and PathCost helpers
//   - squaregrid/ dense rectangular grids with 4- or 8-connectivity,
//     ASCII map parsing, edge weights and corner-cutting rules
//   - hexgrid/    sparse hex grids in axial coordinates with side barriers
//   - cmd/tilepath a command-line front end for ASCII maps
//
// The search core knows nothing about geometry. A grid hands out tiles, a
// tile lists its candidate neighbors and estimates the remaining cost, and an
// edge-weight policy prices each step. Swap any of the three without
// touching the algorithm.
//
// Quick ASCII example:
//
//	S.#..
//	..#..
//	....G
//
//	tilepath find --map level.txt
//
//	**#..
//	.*#..
//	.****
//	cost=6 steps=6 expanded=9
//
//	go get github.com/katalvlaran/tilepath
package tilepath
