package squaregrid

import (
	"github.com/katalvlaran/tilepath/astar"
)

// NoCornerCutting forbids a diagonal step unless both orthogonal cells it
// sweeps past are inside g and walkable. Orthogonal steps are always allowed.
//
//	S #
//	. G    S→G is rejected: the swept corner (1,0) is a wall.
func NoCornerCutting(g *Grid) astar.Connectivity[Cell, *Tile] {
	return func(from Cell, _ *Tile, to Cell) bool {
		if !isDiagonal(from, to) {
			return true
		}
		return g.Walkable(Cell{X: to.X, Y: from.Y}) && g.Walkable(Cell{X: from.X, Y: to.Y})
	}
}

// NoSqueeze forbids a diagonal step only when both swept corners are
// blocked, i.e. when the mover would slip between two walls touching at a
// corner. A single blocked corner is allowed.
func NoSqueeze(g *Grid) astar.Connectivity[Cell, *Tile] {
	return func(from Cell, _ *Tile, to Cell) bool {
		if !isDiagonal(from, to) {
			return true
		}
		return g.Walkable(Cell{X: to.X, Y: from.Y}) || g.Walkable(Cell{X: from.X, Y: to.Y})
	}
}
