package squaregrid

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/astar"
)

// FindPath runs astar.Search on g from start to goal, pricing steps with weight.
// An unreachable goal yields Result.Found == false and a nil error.
func (g *Grid) FindPath(start, goal Cell, weight Weight, opts ...Option) (Result, error) {
	return astar.Search[Cell, *Tile](g, start, goal, weight, opts...)
}

// Reachable returns every cell reachable from start under opts.
func (g *Grid) Reachable(start Cell, opts ...Option) (mapset.Set[Cell], error) {
	return astar.Reachable[Cell, *Tile](g, start, opts...)
}

// ValidatePath reports an error wrapping astar.ErrBrokenPath if path
// contains an illegal step under opts.
func (g *Grid) ValidatePath(path []Cell, opts ...Option) error {
	return astar.ValidatePath[Cell, *Tile](g, path, opts...)
}

// PathCost sums weight along path.
func (g *Grid) PathCost(path []Cell, weight Weight) (int64, error) {
	return astar.PathCost[Cell, *Tile](g, path, weight)
}

// WithConnectivity wraps astar.WithConnectivity for square grids.
func WithConnectivity(fn astar.Connectivity[Cell, *Tile]) Option {
	return astar.WithConnectivity(fn)
}

// WithOnExpand wraps astar.WithOnExpand for square grids.
func WithOnExpand(fn func(cell Cell, g int64)) Option {
	return astar.WithOnExpand[Cell, *Tile](fn)
}

// WithOnRelax wraps astar.WithOnRelax for square grids.
func WithOnRelax(fn func(from, to Cell, g, f int64)) Option {
	return astar.WithOnRelax[Cell, *Tile](fn)
}

// WithInitialCapacity pre-sizes search state for n cells.
func WithInitialCapacity(n int) Option {
	return astar.WithInitialCapacity[Cell, *Tile](n)
}
