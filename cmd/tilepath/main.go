// Command tilepath loads an ASCII map and searches it with A*.
//
//	tilepath find --map level.txt --from 0,0 --to 9,4 --diagonal --weight octile
//	tilepath reach --map level.txt --from 0,0
//
// Map characters: '.' ground, '#' wall, '1'..'9' terrain cost, 'S'/'G'
// start/goal markers (used when --from/--to are omitted).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/squaregrid"
)

// errUnreachable makes the process exit non-zero without a usage dump.
var errUnreachable = errors.New("tilepath: goal unreachable")

// mapFlags are shared by every subcommand.
type mapFlags struct {
	path          string
	from, to      string
	diagonal      bool
	cornerCutting bool
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errUnreachable) {
			root.PrintErrln(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tilepath",
		Short:         "A* pathfinding over ASCII tile maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFindCmd(), newReachCmd())
	root.SetErr(os.Stderr)

	return root
}

func (f *mapFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "map", "m", "", "path to the ASCII map file (required)")
	cmd.Flags().StringVar(&f.from, "from", "", "start cell as x,y (default: the map's S marker)")
	cmd.Flags().BoolVar(&f.diagonal, "diagonal", false, "allow 8-directional movement")
	cmd.Flags().BoolVar(&f.cornerCutting, "corner-cutting", false, "allow diagonal steps past blocked corners")
	_ = cmd.MarkFlagRequired("map")
}

// load parses the map and resolves the start cell.
func (f *mapFlags) load(opts squaregrid.GridOptions) (*squaregrid.Map, squaregrid.Cell, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, squaregrid.Cell{}, err
	}
	defer file.Close()

	m, err := squaregrid.Parse(file, opts)
	if err != nil {
		return nil, squaregrid.Cell{}, fmt.Errorf("%s: %w", f.path, err)
	}
	start, err := pickCell(f.from, m.Start, m.HasStart, "start")
	if err != nil {
		return nil, squaregrid.Cell{}, err
	}

	return m, start, nil
}

// gridOptions derives grid options from the flags and the weight policy name.
func (f *mapFlags) gridOptions(weight string) squaregrid.GridOptions {
	if !f.diagonal {
		return squaregrid.DefaultGridOptions()
	}
	if weight == "uniform" {
		opts := squaregrid.DefaultGridOptions()
		opts.Conn = squaregrid.Conn8
		return opts
	}
	return squaregrid.OctileGridOptions()
}

// searchOptions returns the connectivity option for g.
func (f *mapFlags) searchOptions(g *squaregrid.Grid) []squaregrid.Option {
	if !f.diagonal || f.cornerCutting {
		return nil
	}
	return []squaregrid.Option{squaregrid.WithConnectivity(squaregrid.NoCornerCutting(g))}
}

func pickCell(flag string, marker squaregrid.Cell, hasMarker bool, what string) (squaregrid.Cell, error) {
	if flag != "" {
		return squaregrid.ParseCell(flag)
	}
	if !hasMarker {
		return squaregrid.Cell{}, fmt.Errorf("tilepath: no %s given and map has no marker", what)
	}
	return marker, nil
}
