package squaregrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/squaregrid"
)

func xy(x, y int) squaregrid.Cell { return squaregrid.Cell{X: x, Y: y} }

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or mispriced inputs.
func TestNewGrid_Errors(t *testing.T) {
	bad := squaregrid.DefaultGridOptions()
	bad.StepCost = -1
	cases := []struct {
		name string
		grid [][]int
		opts squaregrid.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, squaregrid.DefaultGridOptions(), squaregrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, squaregrid.DefaultGridOptions(), squaregrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, squaregrid.DefaultGridOptions(), squaregrid.ErrNonRectangular},
		{"NegativeStep", [][]int{{1}}, bad, squaregrid.ErrBadCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := squaregrid.NewGrid(tc.grid, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_DeepCopy checks that later edits to the input do not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	values := [][]int{{1, 1}}
	g, err := squaregrid.From2D(values, squaregrid.Conn4)
	require.NoError(t, err)
	values[0][1] = 0
	assert.True(t, g.Walkable(xy(1, 0)))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := squaregrid.From2D([][]int{{0, 1, 0}, {1, 0, 1}}, squaregrid.Conn4)
	require.NoError(t, err)

	for _, c := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(c[0], c[1]), "InBounds(%d,%d)", c[0], c[1])
	}
	for _, c := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(c[0], c[1]), "InBounds(%d,%d)", c[0], c[1])
	}
}

//----------------------------------------------------------------------------//
// Tile lookup Tests
//----------------------------------------------------------------------------//

func TestTileLookup(t *testing.T) {
	g, err := squaregrid.From2D([][]int{{1, 0}, {4, -2}}, squaregrid.Conn4)
	require.NoError(t, err)

	tile, ok := g.TryTile(xy(0, 1))
	require.True(t, ok)
	assert.Equal(t, int64(4), tile.Cost)
	assert.True(t, tile.Walkable())
	assert.Same(t, tile, g.Tile(xy(0, 1)))

	wall, ok := g.TryTile(xy(1, 0))
	require.True(t, ok)
	assert.False(t, wall.Walkable())

	neg, _ := g.TryTile(xy(1, 1))
	assert.Equal(t, int64(0), neg.Cost, "negative input clamps to a wall")

	_, ok = g.TryTile(xy(2, 0))
	assert.False(t, ok)
	assert.False(t, g.Walkable(xy(-1, -1)))

	assert.Panics(t, func() { g.Tile(xy(5, 5)) })
}

func TestNeighbors(t *testing.T) {
	g4, _ := squaregrid.From2D([][]int{{1}}, squaregrid.Conn4)
	g8, _ := squaregrid.From2D([][]int{{1}}, squaregrid.Conn8)

	// Neighbors are listed even beyond the border.
	assert.Equal(t,
		[]squaregrid.Cell{xy(0, -1), xy(1, 0), xy(0, 1), xy(-1, 0)},
		g4.Tile(xy(0, 0)).Neighbors(xy(0, 0)))
	assert.Len(t, g8.Tile(xy(0, 0)).Neighbors(xy(0, 0)), 8)
	assert.Len(t, g8.NeighborOffsets(), 8)
}

func TestHeuristic(t *testing.T) {
	values := [][]int{{1}}
	manhattan, _ := squaregrid.From2D(values, squaregrid.Conn4)
	chebyshev, _ := squaregrid.From2D(values, squaregrid.Conn8)
	octile, _ := squaregrid.NewGrid(values, squaregrid.OctileGridOptions())
	off, _ := squaregrid.NewGrid(values, squaregrid.GridOptions{Conn: squaregrid.Conn8})
	clamped, _ := squaregrid.NewGrid(values, squaregrid.GridOptions{Conn: squaregrid.Conn8, StepCost: 1, DiagonalCost: 5})

	from, to := xy(0, 0), xy(3, -5)
	assert.Equal(t, int64(8), manhattan.Tile(from).Heuristic(from, to))
	assert.Equal(t, int64(5), chebyshev.Tile(from).Heuristic(from, to))
	assert.Equal(t, int64(10*5+4*3), octile.Tile(from).Heuristic(from, to))
	assert.Equal(t, int64(0), off.Tile(from).Heuristic(from, to))
	assert.Equal(t, int64(8), clamped.Tile(from).Heuristic(from, to), "diagonal price clamps to two steps")
	assert.Equal(t, int64(0), octile.Tile(from).Heuristic(to, to))
}

func TestRenderAndCoordinate(t *testing.T) {
	g, err := squaregrid.From2D([][]int{{1, 0, 3}, {1, 12, 1}}, squaregrid.Conn4)
	require.NoError(t, err)

	assert.Equal(t, ".#3\n.9.\n", g.Render(nil))
	assert.Equal(t, "*#3\n**.\n", g.Render([]squaregrid.Cell{xy(0, 0), xy(0, 1), xy(1, 1)}))

	assert.Equal(t, xy(2, 0), g.Coordinate(2))
	assert.Equal(t, xy(1, 1), g.Coordinate(4))
}

func TestCellAndConnectivityString(t *testing.T) {
	assert.Equal(t, "(3,-1)", xy(3, -1).String())
	assert.Equal(t, xy(4, 1), xy(3, -1).Add(1, 2))
	assert.Equal(t, "conn4", squaregrid.Conn4.String())
	assert.Equal(t, "conn8", squaregrid.Conn8.String())
}
