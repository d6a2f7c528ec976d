package main

import (
	"github.com/spf13/cobra"
)

func convertCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output.yaml>",
		Short: "Rewrite a definition file as YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			solver, err := newSolver(cmd, cfg)
			if err != nil {
				return err
			}

			return solver.Convert(args[0], args[1])
		},
	}
}
