// Package squaregrid provides a rectangular tile grid that satisfies the
// astar Grid and Tile contracts. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Per-tile terrain costs
//   - Manhattan/Chebyshev/octile heuristics derived from GridOptions
//
// Cells with value < 1 are walls; cells with value ≥ 1 are walkable and the
// value is their terrain cost.
package squaregrid

import (
	"fmt"
	"strings"
)

// Tile is one square of the grid. Tiles are owned by their Grid and must be
// treated as read-only.
type Tile struct {
	// Cost is the terrain cost of entering this tile (≥ 1 when walkable).
	Cost int64
	grid *Grid
}

// Walkable reports whether the tile can be entered.
func (t *Tile) Walkable() bool {
	return t.Cost >= 1
}

// Neighbors returns the cells adjacent to self under the grid's connectivity.
// Cells beyond the border are included; the search filters them out.
func (t *Tile) Neighbors(self Cell) []Cell {
	out := make([]Cell, 0, len(t.grid.offsets))
	for _, d := range t.grid.offsets {
		out = append(out, self.Add(d[0], d[1]))
	}

	return out
}

// Heuristic estimates the remaining cost from self to goal using the
// grid's StepCost and DiagonalCost.
func (t *Tile) Heuristic(self, goal Cell) int64 {
	dx := int64(abs(self.X - goal.X))
	dy := int64(abs(self.Y - goal.Y))

	return t.grid.stepCost*(dx+dy) + (t.grid.diagCost-2*t.grid.stepCost)*min(dx, dy)
}

// Grid is a rectangular, immutable tile grid.
// Width and Height define dimensions; tiles are stored row-major.
// offsets is precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	tiles         []Tile
	offsets       [][2]int
	stepCost      int64
	diagCost      int64
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice, where
// values[y][x] is the terrain cost of cell (x,y) and values < 1 are walls.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadCost if StepCost or DiagonalCost is negative.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.StepCost < 0 || opts.DiagonalCost < 0 {
		return nil, fmt.Errorf("%w: step=%d diagonal=%d", ErrBadCost, opts.StepCost, opts.DiagonalCost)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:    w,
		Height:   h,
		Conn:     opts.Conn,
		tiles:    make([]Tile, w*h),
		stepCost: opts.StepCost,
		diagCost: opts.DiagonalCost,
	}
	// Precompute neighbor offsets based on connectivity
	if opts.Conn == Conn8 {
		g.offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		g.offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	// Diagonal price for the heuristic: default, then clamp to 2·step so the
	// estimate never exceeds the two-orthogonal-steps detour.
	if g.diagCost == 0 {
		if opts.Conn == Conn8 {
			g.diagCost = g.stepCost
		} else {
			g.diagCost = 2 * g.stepCost
		}
	}
	if opts.Conn == Conn4 || g.diagCost > 2*g.stepCost {
		g.diagCost = 2 * g.stepCost
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := values[y][x]
			if v < 0 {
				v = 0
			}
			g.tiles[g.index(x, y)] = Tile{Cost: int64(v), grid: g}
		}
	}

	return g, nil
}

// From2D builds a Grid with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*Grid, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGrid(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Tile returns the tile at c. It panics if c is out of bounds; use TryTile
// for arbitrary probes.
func (g *Grid) Tile(c Cell) *Tile {
	if !g.InBounds(c.X, c.Y) {
		panic(fmt.Sprintf("squaregrid: cell %v outside %dx%d grid", c, g.Width, g.Height))
	}

	return &g.tiles[g.index(c.X, c.Y)]
}

// TryTile returns the tile at c, or nil and false when c is out of bounds.
func (g *Grid) TryTile(c Cell) (*Tile, bool) {
	if !g.InBounds(c.X, c.Y) {
		return nil, false
	}

	return &g.tiles[g.index(c.X, c.Y)], true
}

// Walkable reports whether c is inside the grid and walkable.
func (g *Grid) Walkable(c Cell) bool {
	t, ok := g.TryTile(c)
	return ok && t.Walkable()
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.offsets
}

// Render draws the grid as text: '#' for walls, '.' for cost-1 tiles,
// the digit for costlier tiles (capped at 9) and '*' for cells on path.
func (g *Grid) Render(path []Cell) string {
	on := make(map[Cell]bool, len(path))
	for _, c := range path {
		on[c] = true
	}

	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t := &g.tiles[g.index(x, y)]
			switch {
			case on[Cell{X: x, Y: y}]:
				sb.WriteByte('*')
			case !t.Walkable():
				sb.WriteByte('#')
			case t.Cost == 1:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + min(t.Cost, 9)))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
