package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindcube/notation"
)

func newExpandCmd(a *app) *cobra.Command {
	var simplify bool
	cmd := &cobra.Command{
		Use:   "expand NOTATION",
		Short: "Expand commutator, conjugate and slash notation into face turns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expand := notation.Expand
			if simplify {
				expand = notation.Normalize
			}
			out, err := expand(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)

			return nil
		},
	}
	cmd.Flags().BoolVar(&simplify, "simplify", false, "merge and cancel adjacent turns")

	return cmd
}
