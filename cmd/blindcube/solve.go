package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve SCRAMBLE",
		Short: "Print the corner and edge operation sequences for a scramble",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cube.Scramble(args[0])
			if err != nil {
				return err
			}
			sol := blind.Solve(s)
			a.log.WithFields(logrus.Fields{
				"corners": len(sol.Corners),
				"edges":   len(sol.Edges),
				"parity":  sol.Parity,
			}).Debug("solve: inspected")

			fmt.Fprintf(a.out, "corners: %s\n", orDash(sol.Corners.String()))
			fmt.Fprintf(a.out, "edges:   %s\n", orDash(sol.Edges.String()))
			fmt.Fprintf(a.out, "parity:  %s\n", yesNo(sol.Parity))

			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
