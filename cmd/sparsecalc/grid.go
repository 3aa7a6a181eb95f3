package main

import (
	"github.com/spf13/cobra"
)

func newGridCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grid <matrix>",
		Short: "Print a matrix file as a dense grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.calculator().Load(args[0])
			if err != nil {
				return err
			}
			return m.WriteGrid(cmd.OutOrStdout())
		},
	}
}
