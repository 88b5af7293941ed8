package hexgrid

import (
	"github.com/katalvlaran/tilepath/astar"
)

// FindPath runs astar.Search on g from start to goal, pricing steps with weight.
func (g *Grid) FindPath(start, goal Hex, weight Weight, opts ...Option) (Result, error) {
	return astar.Search[Hex, *Tile](g, start, goal, weight, opts...)
}

// WithBarriers restricts searches to steps that do not cross b.
func WithBarriers(b *Barriers) Option {
	return astar.WithConnectivity(b.Connectivity())
}
