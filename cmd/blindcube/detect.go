package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
	"github.com/katalvlaran/blindcube/detect"
)

var errUnknownKind = errors.New("unknown kind (want corners, edges or mixed)")

func newDetectCmd(a *app) *cobra.Command {
	var (
		scramble, executed, observed, kind string
		limit                              int
	)
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Explain a wrong final state by one or two substituted operations",
		Long: `detect builds the correct operation sequence for --scramble and lists every
single or double substitution that reproduces the observed state.

The observed state is either --executed turns applied to the scrambled cube
or --observed turns applied to a solved cube. For corners and edges only
that piece kind of the observed state is compared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initial, err := cube.Scramble(scramble)
			if err != nil {
				return fmt.Errorf("detect: scramble: %w", err)
			}
			var got cube.State
			if executed != "" {
				got, err = initial.ApplyAlgorithm(executed)
			} else {
				got, err = cube.Scramble(observed)
			}
			if err != nil {
				return fmt.Errorf("detect: observed: %w", err)
			}

			switch kind {
			case "corners":
				return report(a, detect.NewCorner(initial, a.detectOptions()...), project(blind.Corners, initial, got), limit)
			case "edges":
				return report(a, detect.NewEdge(initial, a.detectOptions()...), project(blind.Edges, initial, got), limit)
			case "mixed":
				return report(a, detect.NewMixed(initial, a.detectOptions()...), got, limit)
			default:
				return fmt.Errorf("detect: %q: %w", kind, errUnknownKind)
			}
		},
	}

	f := cmd.Flags()
	f.StringVarP(&scramble, "scramble", "s", "", "turns that produced the initial state")
	f.StringVarP(&executed, "executed", "e", "", "turns performed on the scrambled cube")
	f.StringVarP(&observed, "observed", "o", "", "turns from solved that reach the observed state")
	f.StringVarP(&kind, "kind", "k", "corners", "corners, edges or mixed")
	f.IntVar(&limit, "limit", 10, "maximum matches printed (0 prints all)")
	_ = cmd.MarkFlagRequired("scramble")
	cmd.MarkFlagsOneRequired("executed", "observed")
	cmd.MarkFlagsMutuallyExclusive("executed", "observed")

	return cmd
}

// project keeps the observed pieces of one kind and the initial pieces of
// the other, which a single-kind sequence never moves.
func project(kind blind.PieceKind, initial, observed cube.State) cube.State {
	out := initial
	if kind == blind.Corners {
		out.CP, out.CO = observed.CP, observed.CO
	} else {
		out.EP, out.EO = observed.EP, observed.EO
	}

	return out
}

func report[T blind.Operation[T]](a *app, d *detect.Detector[T], observed cube.State, limit int) error {
	fmt.Fprintf(a.out, "correct (%d): %s\n", len(d.Correct()), orDash(d.Correct().String()))
	if observed == d.Correct().Apply(d.Initial()) {
		fmt.Fprintln(a.out, "observed state is the correct result")
		return nil
	}

	matches := d.Detect(observed)
	fmt.Fprintf(a.out, "matches: %d\n", len(matches))
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "no single or double substitution reproduces the observed state")
		return nil
	}

	style := blind.DefaultStyle()
	for i, ms := range matches {
		if limit > 0 && i == limit {
			fmt.Fprintf(a.out, "  ... %d more\n", len(matches)-limit)
			break
		}
		text := ms.String()
		if a.cfg.Color {
			text = ms.Render(style)
		}
		fmt.Fprintf(a.out, "  %d. d=%d  %s\n", i+1, ms.Distance(), text)
	}

	return nil
}
