// Package squaregrid defines core types, options, and sentinel errors
// for the squaregrid subpackage of github.com/katalvlaran/tilepath.
package squaregrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
)

// Sentinel errors for squaregrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("squaregrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("squaregrid: all rows must have the same length")
	// ErrBadCost indicates a negative StepCost or DiagonalCost.
	ErrBadCost = errors.New("squaregrid: step costs must be non-negative")
	// ErrBadRune indicates an unknown character in an ASCII map.
	ErrBadRune = errors.New("squaregrid: unknown map character")
	// ErrBadCell indicates a malformed "x,y" cell literal.
	ErrBadCell = errors.New("squaregrid: cell must be written as x,y")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Cell identifies one grid position. X grows to the east, Y to the south.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// GridOptions contains tunable parameters for a square grid.
//
// StepCost and DiagonalCost are the cheapest possible prices of one
// orthogonal and one diagonal step. They drive the tile heuristic
//
//	h = StepCost·(dx+dy) + (DiagonalCost − 2·StepCost)·min(dx,dy)
//
// which is Manhattan distance under Conn4, Chebyshev distance when
// DiagonalCost == StepCost, and octile distance in between. The heuristic
// stays admissible as long as no edge weight undercuts these prices.
// A StepCost of 0 turns the heuristic off (plain uniform-cost search).
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// StepCost is the minimal cost of an orthogonal step (default 1).
	StepCost int64
	// DiagonalCost is the minimal cost of a diagonal step. Zero selects the
	// default: 2·StepCost under Conn4, StepCost under Conn8.
	DiagonalCost int64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, StepCost=1, DiagonalCost derived.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:     Conn4,
		StepCost: 1,
	}
}

// OctileGridOptions returns 8-connected options priced 10 per orthogonal and
// 14 per diagonal step, matching OctileCost and TerrainCost(10, 14).
func OctileGridOptions() GridOptions {
	return GridOptions{
		Conn:         Conn8,
		StepCost:     10,
		DiagonalCost: 14,
	}
}

// Weight is the edge-weight policy type accepted by square grid searches.
type Weight = astar.EdgeWeight[Cell, *Tile]

// Option configures square grid searches.
type Option = astar.Option[Cell, *Tile]

// Result is the outcome of a square grid search.
type Result = astar.Result[Cell]
