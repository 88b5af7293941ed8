package hexgrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
)

// Sentinel errors for hexgrid operations.
var (
	// ErrEmptyGrid indicates that no tiles were supplied.
	ErrEmptyGrid = errors.New("hexgrid: grid must contain at least one tile")
	// ErrBadRadius indicates a negative hexagon radius.
	ErrBadRadius = errors.New("hexgrid: radius must be non-negative")
	// ErrBadCost indicates a negative StepCost.
	ErrBadCost = errors.New("hexgrid: step cost must be non-negative")
)

// Hex is an axial coordinate (q, r). The third cube coordinate is
// s = -q - r.
type Hex struct {
	Q, R int
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Add returns h + o.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// String formats the hex as "[q,r]".
func (h Hex) String() string {
	return fmt.Sprintf("[%d,%d]", h.Q, h.R)
}

// Directions lists the six axial neighbor offsets, starting east and
// turning counter-clockwise.
var Directions = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Distance returns the number of hex steps between a and b.
func Distance(a, b Hex) int {
	dq, dr, ds := abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S())
	return (dq + dr + ds) / 2
}

// GridOptions contains tunable parameters for a hex grid.
type GridOptions struct {
	// StepCost is the minimal cost of one step; the heuristic is
	// StepCost × Distance. Zero disables the heuristic.
	StepCost int64
}

// DefaultGridOptions returns GridOptions{StepCost: 1}.
func DefaultGridOptions() GridOptions {
	return GridOptions{StepCost: 1}
}

// Weight is the edge-weight policy type accepted by hex grid searches.
type Weight = astar.EdgeWeight[Hex, *Tile]

// Option configures hex grid searches.
type Option = astar.Option[Hex, *Tile]

// Result is the outcome of a hex grid search.
type Result = astar.Result[Hex]

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
