package squaregrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Map is a parsed ASCII map: the grid plus optional start and goal markers.
type Map struct {
	Grid     *Grid
	Start    Cell
	Goal     Cell
	HasStart bool
	HasGoal  bool
}

// Parse reads an ASCII map, one row per line:
//
//	'.'        open ground (cost 1)
//	'1'..'9'   open ground with that terrain cost
//	'#'        wall
//	'S', 'G'   open ground marking the start / goal
//
// Trailing blank lines and '\r' are ignored. All rows must have the same
// length. Returns ErrEmptyGrid, ErrNonRectangular or ErrBadRune (wrapped
// with its position), or any read error.
func Parse(r io.Reader, opts GridOptions) (*Map, error) {
	var (
		rows [][]int
		m    Map
	)
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]int, 0, len(line))
		for x, ch := range []byte(line) {
			switch {
			case ch == '.':
				row = append(row, 1)
			case ch == '#':
				row = append(row, 0)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == 'S':
				m.Start, m.HasStart = Cell{X: x, Y: y}, true
				row = append(row, 1)
			case ch == 'G':
				m.Goal, m.HasGoal = Cell{X: x, Y: y}, true
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, ch, x, y)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("squaregrid: read map: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	g, err := NewGrid(rows, opts)
	if err != nil {
		return nil, err
	}
	m.Grid = g

	return &m, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts GridOptions) (*Map, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseCell parses an "x,y" literal such as "3,0".
func ParseCell(s string) (Cell, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}

	return Cell{X: x, Y: y}, nil
}
