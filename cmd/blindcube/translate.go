package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindcube/algdb"
	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

var errNoTable = errors.New("no algorithm table (set --algorithms or algorithms in config)")

func newTranslateCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "translate SCRAMBLE",
		Short: "Turn the solution of a scramble into face turns using an algorithm table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = a.cfg.Algorithms
			}
			if path == "" {
				return fmt.Errorf("translate: %w", errNoTable)
			}
			db, err := algdb.LoadFile(path)
			if err != nil {
				return err
			}
			a.log.WithField("entries", db.Len()).Debug("translate: table loaded")

			s, err := cube.Scramble(args[0])
			if err != nil {
				return err
			}
			turns, err := algdb.TranslateSolution(db, blind.Solve(s))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "turns (%d): %s\n", len(turns), orDash(strings.Join(turns, " ")))

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "algorithms", "a", "", "algorithm table (YAML or JSON)")

	return cmd
}
