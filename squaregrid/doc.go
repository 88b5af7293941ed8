// Package squaregrid treats a rectangular grid of terrain costs as a tile
// grid for the astar package.
//
// What:
//
//   - Grid wraps a rectangular [][]int of terrain costs; values < 1 are walls.
//   - Tiles enumerate 4 or 8 neighbors (GridOptions.Conn) and estimate the
//     remaining cost with a Manhattan, Chebyshev or octile heuristic derived
//     from GridOptions.StepCost and GridOptions.DiagonalCost.
//   - Edge weights: UniformCost, OctileCost, TerrainCost.
//   - Connectivity predicates: NoCornerCutting, NoSqueeze.
//   - ASCII maps: Parse / ParseString, and Render for path overlays.
//
// Why:
//
//   - Game maps: route units around walls and through cheap terrain.
//   - Tooling: load a map, search it, print the route.
//
// Complexity:
//
//   - NewGrid:  O(W×H), Memory: O(W×H).
//   - FindPath: O(E log E) per astar.Search, Memory: O(W×H).
//   - Render:   O(W×H + |path|).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCost: negative StepCost or DiagonalCost.
//   - ErrBadRune: unknown character in an ASCII map.
//   - ErrBadCell: malformed "x,y" literal.
//
// Grid.Tile panics on out-of-bounds cells; Grid.TryTile never does.
package squaregrid
