package blind

import (
	"fmt"

	"github.com/katalvlaran/blindcube/cube"
)

// Solution is the full-cube result of the fixed-buffer method.
type Solution struct {
	Corners Sequence[CornerOp]
	Edges   Sequence[EdgeOp]
	// Parity is set when the corner sequence has an odd number of swaps;
	// the edges were then inspected with WithSwapInspection.
	Parity bool
}

// Solve inspects corners, then edges. An odd corner swap count switches
// edge inspection to swap-inspection mode and sets Parity.
func Solve(s cube.State) Solution {
	corners := InspectCorners(s)
	parity := corners.Count(IsSwap)%2 == 1

	var edges Sequence[EdgeOp]
	if parity {
		edges = InspectEdges(s, WithSwapInspection())
	} else {
		edges = InspectEdges(s)
	}

	return Solution{Corners: corners, Edges: edges, Parity: parity}
}

// Apply performs the corner sequence, the edge sequence and, when Parity is
// set, the UF/UR exchange. For any input the result is the solved state.
func (sol Solution) Apply(s cube.State) cube.State {
	s = sol.Corners.Apply(s)
	s = sol.Edges.Apply(s)
	if sol.Parity {
		s = ParityExchange(s)
	}

	return s
}

// Mixed joins the corner and edge sequences into one.
func (sol Solution) Mixed() Sequence[MixedOp] {
	return Mix(sol.Corners, sol.Edges)
}

// String renders both halves on one line.
func (sol Solution) String() string {
	p := ""
	if sol.Parity {
		p = " +parity"
	}

	return fmt.Sprintf("corners: [%s] edges: [%s]%s", sol.Corners, sol.Edges, p)
}

// ParityExchange swaps the pieces in UF and UR, each keeping its
// orientation value.
func ParityExchange(s cube.State) cube.State {
	s.EP[EdgeBuffer], s.EP[ParitySlot] = s.EP[ParitySlot], s.EP[EdgeBuffer]
	s.EO[EdgeBuffer], s.EO[ParitySlot] = s.EO[ParitySlot], s.EO[EdgeBuffer]

	return s
}
