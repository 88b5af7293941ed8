package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilWeight indicates that a nil EdgeWeight was passed to Search.
	ErrNilWeight = errors.New("astar: edge weight policy is nil")

	// ErrStartNotFound indicates that the start cell is not present in the grid.
	ErrStartNotFound = errors.New("astar: start cell not found in grid")

	// ErrNegativeWeight indicates that the edge weight policy returned a negative cost.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBrokenPath indicates that a path contains an illegal step.
	ErrBrokenPath = errors.New("astar: path is not contiguous")
)

// Tile is the per-cell capability set consumed by the search.
//
// Heuristic must never overestimate the true remaining cost (admissible)
// and must respect the triangle inequality across edges (consistent).
// Search does not verify either property; violating them forfeits optimality.
type Tile[C comparable] interface {
	// Walkable reports whether the tile can be entered.
	Walkable() bool
	// Neighbors lists candidate adjacent cells of self. Cells outside the
	// grid may be included; they are filtered through Grid.TryTile.
	Neighbors(self C) []C
	// Heuristic estimates the remaining cost from self to goal. Must be ≥ 0.
	Heuristic(self, goal C) int64
}

// Grid maps cells to tiles.
type Grid[C comparable, T Tile[C]] interface {
	// Tile returns the tile at c. The cell must be valid; implementations
	// may panic otherwise.
	Tile(c C) T
	// TryTile returns the tile at c and true, or the zero T and false when
	// c is out of bounds or unoccupied. It never panics.
	TryTile(c C) (T, bool)
}

// EdgeWeight prices a single transition from a tile to an adjacent cell.
// The returned cost must be non-negative; zero-cost edges are allowed.
type EdgeWeight[C comparable, T Tile[C]] interface {
	Cost(from T, fromCell, to C, grid Grid[C, T]) int64
}

// EdgeWeightFunc adapts an ordinary function to the EdgeWeight interface.
type EdgeWeightFunc[C comparable, T Tile[C]] func(from T, fromCell, to C, grid Grid[C, T]) int64

// Cost calls f(from, fromCell, to, grid).
func (f EdgeWeightFunc[C, T]) Cost(from T, fromCell, to C, grid Grid[C, T]) int64 {
	return f(from, fromCell, to, grid)
}

// Connectivity decides whether the step from → to is legal at all,
// independent of its cost. It is evaluated only for walkable, present
// destination tiles and before the edge weight is computed.
type Connectivity[C comparable, T Tile[C]] func(from C, toTile T, to C) bool

// Result holds the outcome of a single search.
//
//   - Path: cells from start to goal inclusive; nil if the goal is unreachable.
//   - Cost: accumulated edge cost along Path (0 when not found).
//   - Expanded: number of entries popped from the open set.
//   - Found: whether the goal was reached.
type Result[C comparable] struct {
	Path     []C
	Cost     int64
	Expanded int
	Found    bool
}

// Option configures a search via functional arguments.
// Invalid arguments are recorded and surfaced as ErrOptionViolation
// when the search runs.
type Option[C comparable, T Tile[C]] func(*Options[C, T])

// Options holds the tunable parameters and hooks of a search.
type Options[C comparable, T Tile[C]] struct {
	// Connectivity filters transitions. Default permits every transition.
	Connectivity Connectivity[C, T]

	// OnExpand is called for every popped cell that is not the goal,
	// with its best known accumulated cost.
	OnExpand func(cell C, g int64)

	// OnRelax is called whenever a strictly cheaper route to `to` is
	// recorded, with its new accumulated cost g and priority f = g + h.
	OnRelax func(from, to C, g, f int64)

	// InitialCapacity pre-sizes the working maps.
	InitialCapacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a Connectivity that permits every transition
//   - no-op OnExpand and OnRelax hooks
//   - InitialCapacity 0 (grow on demand)
func DefaultOptions[C comparable, T Tile[C]]() Options[C, T] {
	return Options[C, T]{
		Connectivity:    func(C, T, C) bool { return true },
		OnExpand:        func(C, int64) {},
		OnRelax:         func(_, _ C, _, _ int64) {},
		InitialCapacity: 0,
	}
}

// WithConnectivity installs a connectivity predicate. A nil fn is ignored.
func WithConnectivity[C comparable, T Tile[C]](fn Connectivity[C, T]) Option[C, T] {
	return func(o *Options[C, T]) {
		if fn != nil {
			o.Connectivity = fn
		}
	}
}

// WithOnExpand registers a callback run for each expanded cell.
func WithOnExpand[C comparable, T Tile[C]](fn func(cell C, g int64)) Option[C, T] {
	return func(o *Options[C, T]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run for each improving relaxation.
func WithOnRelax[C comparable, T Tile[C]](fn func(from, to C, g, f int64)) Option[C, T] {
	return func(o *Options[C, T]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithInitialCapacity pre-sizes internal storage for roughly n cells.
//
//	n ≥ 0: accepted
//	n < 0: invalid option → ErrOptionViolation
func WithInitialCapacity[C comparable, T Tile[C]](n int) Option[C, T] {
	return func(o *Options[C, T]) {
		if n < 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: InitialCapacity cannot be negative (%d)", ErrOptionViolation, n)
			}
			return
		}
		o.InitialCapacity = n
	}
}

// buildOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func buildOptions[C comparable, T Tile[C]](opts []Option[C, T]) (Options[C, T], error) {
	cfg := DefaultOptions[C, T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg, cfg.err
}
