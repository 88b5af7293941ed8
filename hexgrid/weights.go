package hexgrid

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/astar"
)

// UniformCost prices every step at unit.
func UniformCost(unit int64) Weight {
	return astar.EdgeWeightFunc[Hex, *Tile](func(_ *Tile, _, _ Hex, _ astar.Grid[Hex, *Tile]) int64 {
		return unit
	})
}

// TerrainCost prices a step as unit × the destination tile's Cost.
func TerrainCost(unit int64) Weight {
	return astar.EdgeWeightFunc[Hex, *Tile](func(_ *Tile, _, to Hex, grid astar.Grid[Hex, *Tile]) int64 {
		if t, ok := grid.TryTile(to); ok && t.Cost > 1 {
			return unit * t.Cost
		}
		return unit
	})
}

// Barriers is a set of blocked hex sides. A side blocks movement in both
// directions.
type Barriers struct {
	sides mapset.Set[[2]Hex]
}

// NewBarriers returns Barriers blocking the side between each pair.
func NewBarriers(pairs ...[2]Hex) *Barriers {
	b := &Barriers{sides: mapset.New[[2]Hex]()}
	for _, p := range pairs {
		b.Block(p[0], p[1])
	}
	return b
}

// Block adds the side between a and b.
func (b *Barriers) Block(a, c Hex) {
	b.sides.Put(side(a, c))
}

// Blocked reports whether the side between a and c is blocked.
func (b *Barriers) Blocked(a, c Hex) bool {
	return b.sides.Has(side(a, c))
}

// Connectivity returns a predicate rejecting steps across blocked sides.
func (b *Barriers) Connectivity() astar.Connectivity[Hex, *Tile] {
	return func(from Hex, _ *Tile, to Hex) bool {
		return !b.Blocked(from, to)
	}
}

// side orders the pair so that (a,c) and (c,a) share one key.
func side(a, c Hex) [2]Hex {
	if c.Q < a.Q || (c.Q == a.Q && c.R < a.R) {
		a, c = c, a
	}
	return [2]Hex{a, c}
}
