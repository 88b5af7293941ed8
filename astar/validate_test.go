package astar_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/squaregrid"
)

// HelpersSuite exercises Reachable, ValidatePath and PathCost on one map:
//
//	. . # .
//	. 3 # .
//	. . . .
type HelpersSuite struct {
	suite.Suite
	g *squaregrid.Grid
}

func (s *HelpersSuite) SetupTest() {
	m, err := squaregrid.ParseString("..#.\n.3#.\n....\n", squaregrid.DefaultGridOptions())
	s.Require().NoError(err)
	s.g = m.Grid
}

func (s *HelpersSuite) TestReachable_All() {
	set, err := s.g.Reachable(xy(0, 0))
	s.Require().NoError(err)
	s.Equal(10, set.Size())
	s.False(set.Has(xy(2, 0)))
	s.True(set.Has(xy(3, 0)))
}

func (s *HelpersSuite) TestReachable_Connectivity() {
	// Forbid entering column 2 at all: the right side is cut off.
	noCol2 := squaregrid.WithConnectivity(func(_ cell, _ *squaregrid.Tile, to cell) bool { return to.X != 2 })
	set, err := s.g.Reachable(xy(0, 0), noCol2)
	s.Require().NoError(err)
	s.Equal(6, set.Size())
	s.False(set.Has(xy(3, 2)))
}

func (s *HelpersSuite) TestReachable_Errors() {
	_, err := s.g.Reachable(xy(9, 9))
	s.ErrorIs(err, astar.ErrStartNotFound)

	_, err = astar.Reachable[cell, *squaregrid.Tile](nil, xy(0, 0))
	s.ErrorIs(err, astar.ErrNilGrid)

	_, err = s.g.Reachable(xy(0, 0), squaregrid.WithInitialCapacity(-3))
	s.ErrorIs(err, astar.ErrOptionViolation)
}

func (s *HelpersSuite) TestValidatePath() {
	cases := []struct {
		name string
		path []cell
		ok   bool
	}{
		{"Single", []cell{xy(0, 0)}, true},
		{"Valid", []cell{xy(0, 0), xy(0, 1), xy(0, 2), xy(1, 2), xy(2, 2), xy(3, 2)}, true},
		{"Empty", nil, false},
		{"StartOutside", []cell{xy(-1, 0)}, false},
		{"Jump", []cell{xy(0, 0), xy(0, 2)}, false},
		{"Diagonal", []cell{xy(0, 0), xy(1, 1)}, false},
		{"IntoWall", []cell{xy(1, 0), xy(2, 0)}, false},
		{"OffGrid", []cell{xy(3, 0), xy(4, 0)}, false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.g.ValidatePath(tc.path)
			if tc.ok {
				s.NoError(err)
			} else {
				s.ErrorIs(err, astar.ErrBrokenPath)
			}
		})
	}
}

func (s *HelpersSuite) TestValidatePath_Connectivity() {
	noDown := squaregrid.WithConnectivity(func(from cell, _ *squaregrid.Tile, to cell) bool { return to.Y <= from.Y })
	err := s.g.ValidatePath([]cell{xy(0, 0), xy(0, 1)}, noDown)
	s.ErrorIs(err, astar.ErrBrokenPath)
}

func (s *HelpersSuite) TestPathCost() {
	path := []cell{xy(0, 0), xy(1, 0), xy(1, 1), xy(1, 2)}

	total, err := s.g.PathCost(path, squaregrid.TerrainCost(1, 1))
	s.Require().NoError(err)
	s.Equal(int64(1+3+1), total)

	total, err = s.g.PathCost(path[:1], squaregrid.TerrainCost(1, 1))
	s.Require().NoError(err)
	s.Zero(total)

	_, err = s.g.PathCost(path, nil)
	s.ErrorIs(err, astar.ErrNilWeight)

	_, err = s.g.PathCost([]cell{xy(-1, 0), xy(0, 0)}, squaregrid.UniformCost(1))
	s.ErrorIs(err, astar.ErrBrokenPath)

	_, err = s.g.PathCost(path, squaregrid.UniformCost(-2))
	s.ErrorIs(err, astar.ErrNegativeWeight)
}

func TestHelpersSuite(t *testing.T) {
	suite.Run(t, new(HelpersSuite))
}
