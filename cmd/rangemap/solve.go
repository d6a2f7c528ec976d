package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func solveCmd(flags *globalFlags) *cobra.Command {
	var (
		workers  int
		coalesce bool
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Print the lowest terminal value for the seed points and seed ranges",
		Long: `Print the lowest terminal value reachable from the document's seed points,
then the lowest value reachable from its seed ranges. A line is omitted when
the document has no seeds of that kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("workers") {
				if workers < 0 {
					return fmt.Errorf("--workers must not be negative, got %d", workers)
				}
				cfg.Workers = workers
			}

			if cmd.Flags().Changed("coalesce") {
				cfg.Coalesce = coalesce
			}

			solver, err := newSolver(cmd, cfg)
			if err != nil {
				return err
			}

			res, err := solver.Solve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.HasPoints {
				fmt.Fprintln(out, res.PointMin)
			}

			if res.HasRanges {
				fmt.Fprintln(out, res.RangeMin)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Query goroutines, 0 for one per CPU; overrides RANGEMAP_WORKERS")
	cmd.Flags().BoolVar(&coalesce, "coalesce", false, "Merge touching intervals between stages; overrides RANGEMAP_COALESCE")

	return cmd
}
