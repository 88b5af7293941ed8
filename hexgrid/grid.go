// Package hexgrid provides a sparse hex-tile grid in axial coordinates that
// satisfies the astar Grid and Tile contracts.
//
// Only hexes that were supplied at construction exist; every other
// coordinate is "unoccupied" and TryTile reports false for it. Tiles with a
// cost < 1 exist but are not walkable. Each tile has six candidate
// neighbors and a hex-distance heuristic scaled by GridOptions.StepCost.
//
// Barriers add impassable edges between two walkable hexes (rivers, walls
// along a hex side) through a connectivity predicate.
//
// Complexity:
//
//   - New / NewHexagon: O(N), Memory: O(N).
//   - FindPath: O(E log E) per astar.Search.
package hexgrid

import (
	"fmt"
)

// Tile is one hex of the grid. Tiles are owned by their Grid and must be
// treated as read-only.
type Tile struct {
	// Cost is the terrain cost of entering this tile (≥ 1 when walkable).
	Cost int64
	grid *Grid
}

// Walkable reports whether the tile can be entered.
func (t *Tile) Walkable() bool { return t.Cost >= 1 }

// Neighbors returns the six hexes around self, present in the grid or not.
func (t *Tile) Neighbors(self Hex) []Hex {
	out := make([]Hex, 0, len(Directions))
	for _, d := range Directions {
		out = append(out, self.Add(d))
	}
	return out
}

// Heuristic returns StepCost × Distance(self, goal).
func (t *Tile) Heuristic(self, goal Hex) int64 {
	return t.grid.stepCost * int64(Distance(self, goal))
}

// Grid is an immutable set of hex tiles keyed by axial coordinate.
type Grid struct {
	tiles    map[Hex]*Tile
	stepCost int64
}

// New builds a Grid from a map of terrain costs. The map is copied.
// Returns ErrEmptyGrid for an empty map and ErrBadCost for a negative StepCost.
func New(costs map[Hex]int, opts GridOptions) (*Grid, error) {
	if len(costs) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.StepCost < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCost, opts.StepCost)
	}

	g := &Grid{tiles: make(map[Hex]*Tile, len(costs)), stepCost: opts.StepCost}
	for h, c := range costs {
		if c < 0 {
			c = 0
		}
		g.tiles[h] = &Tile{Cost: int64(c), grid: g}
	}

	return g, nil
}

// NewHexagon builds a hexagon-shaped Grid of the given radius centered on
// the origin; cost(h) supplies each tile's terrain cost. A nil cost makes
// every tile cost 1. Radius 0 yields a single hex.
func NewHexagon(radius int, cost func(Hex) int, opts GridOptions) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	if cost == nil {
		cost = func(Hex) int { return 1 }
	}

	costs := make(map[Hex]int, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			h := Hex{Q: q, R: r}
			costs[h] = cost(h)
		}
	}

	return New(costs, opts)
}

// Len returns the number of hexes in the grid.
func (g *Grid) Len() int { return len(g.tiles) }

// Tile returns the tile at h. It panics if h is not part of the grid.
func (g *Grid) Tile(h Hex) *Tile {
	t, ok := g.tiles[h]
	if !ok {
		panic(fmt.Sprintf("hexgrid: hex %v not in grid", h))
	}
	return t
}

// TryTile returns the tile at h, or nil and false if h is not part of the grid.
func (g *Grid) TryTile(h Hex) (*Tile, bool) {
	t, ok := g.tiles[h]
	return t, ok
}

// Walkable reports whether h is part of the grid and walkable.
func (g *Grid) Walkable(h Hex) bool {
	t, ok := g.tiles[h]
	return ok && t.Walkable()
}
