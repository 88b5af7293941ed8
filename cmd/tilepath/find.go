package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/squaregrid"
)

func newFindCmd() *cobra.Command {
	var (
		flags  mapFlags
		weight string
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a lowest-cost path and print it over the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := pickWeight(weight, flags.diagonal)
			if err != nil {
				return err
			}
			m, start, err := flags.load(flags.gridOptions(weight))
			if err != nil {
				return err
			}
			goal, err := pickCell(flags.to, m.Goal, m.HasGoal, "goal")
			if err != nil {
				return err
			}

			opts := flags.searchOptions(m.Grid)
			if trace {
				opts = append(opts,
					squaregrid.WithOnExpand(func(c squaregrid.Cell, g int64) {
						cmd.PrintErrf("expand %v g=%d\n", c, g)
					}),
					squaregrid.WithOnRelax(func(from, to squaregrid.Cell, g, f int64) {
						cmd.PrintErrf("relax  %v→%v g=%d f=%d\n", from, to, g, f)
					}),
				)
			}

			res, err := m.Grid.FindPath(start, goal, w, opts...)
			if err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %v to %v (expanded=%d)\n", start, goal, res.Expanded)
				return errUnreachable
			}
			fmt.Fprint(cmd.OutOrStdout(), m.Grid.Render(res.Path))
			fmt.Fprintf(cmd.OutOrStdout(), "cost=%d steps=%d expanded=%d\n", res.Cost, len(res.Path)-1, res.Expanded)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.to, "to", "", "goal cell as x,y (default: the map's G marker)")
	cmd.Flags().StringVarP(&weight, "weight", "w", "terrain", "edge weight: uniform, octile or terrain")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every expansion and relaxation to stderr")

	return cmd
}

func newReachCmd() *cobra.Command {
	var flags mapFlags
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Count the cells reachable from the start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, start, err := flags.load(flags.gridOptions("uniform"))
			if err != nil {
				return err
			}
			set, err := m.Grid.Reachable(start, flags.searchOptions(m.Grid)...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reachable=%d of %d cells\n", set.Size(), m.Grid.Width*m.Grid.Height)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// pickWeight maps a policy name to a square-grid edge weight. Diagonal
// maps price steps 10/14 so the octile heuristic stays admissible.
func pickWeight(name string, diagonal bool) (squaregrid.Weight, error) {
	orth, diag := int64(1), int64(2)
	if diagonal {
		orth, diag = 10, 14
	}
	switch name {
	case "uniform":
		return squaregrid.UniformCost(1), nil
	case "octile":
		return squaregrid.OctileCost(orth, diag), nil
	case "terrain":
		return squaregrid.TerrainCost(orth, diag), nil
	default:
		return nil, fmt.Errorf("tilepath: unknown weight %q (want uniform, octile or terrain)", name)
	}
}
