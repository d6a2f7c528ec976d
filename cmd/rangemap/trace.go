package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func traceCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file> <value>...",
		Short: "Show each value in every category along the pipeline",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]uint64, len(args)-1)
			for i, arg := range args[1:] {
				v, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				values[i] = v
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			solver, err := newSolver(cmd, cfg)
			if err != nil {
				return err
			}

			traces, err := solver.Trace(args[0], values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, steps := range traces {
				parts := make([]string, len(steps))
				for i, st := range steps {
					parts[i] = fmt.Sprintf("%s %d", st.Category, st.Value)
				}
				fmt.Fprintln(out, strings.Join(parts, ", "))
			}

			return nil
		},
	}
}
