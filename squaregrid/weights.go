package squaregrid

import (
	"github.com/katalvlaran/tilepath/astar"
)

// UniformCost prices every step, orthogonal or diagonal, at unit.
func UniformCost(unit int64) Weight {
	return astar.EdgeWeightFunc[Cell, *Tile](func(_ *Tile, _, _ Cell, _ astar.Grid[Cell, *Tile]) int64 {
		return unit
	})
}

// OctileCost prices orthogonal steps at orth and diagonal steps at diag.
// Use together with OctileGridOptions (orth=10, diag=14) for an octile
// heuristic that matches the weights.
func OctileCost(orth, diag int64) Weight {
	return astar.EdgeWeightFunc[Cell, *Tile](func(_ *Tile, from, to Cell, _ astar.Grid[Cell, *Tile]) int64 {
		if isDiagonal(from, to) {
			return diag
		}
		return orth
	})
}

// TerrainCost prices a step as the destination tile's Cost multiplied by
// orth or diag depending on direction. A destination outside the grid is
// priced as plain ground.
func TerrainCost(orth, diag int64) Weight {
	return astar.EdgeWeightFunc[Cell, *Tile](func(_ *Tile, from, to Cell, grid astar.Grid[Cell, *Tile]) int64 {
		base := orth
		if isDiagonal(from, to) {
			base = diag
		}
		if t, ok := grid.TryTile(to); ok && t.Cost > 1 {
			return base * t.Cost
		}
		return base
	})
}

// isDiagonal reports whether from → to changes both coordinates.
func isDiagonal(from, to Cell) bool {
	return from.X != to.X && from.Y != to.Y
}
