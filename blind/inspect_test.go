package blind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

func TestInspect_SolvedIsEmpty(t *testing.T) {
	assert.Empty(t, blind.InspectCorners(cube.Solved()))
	assert.Empty(t, blind.InspectEdges(cube.Solved()))
}

func TestInspectCorners_SexyMove(t *testing.T) {
	s := mustScramble(t, sexy)
	got := blind.InspectCorners(s)

	want := blind.Sequence[blind.CornerOp]{
		blind.CornerSwap(cube.DFR, 2),
		blind.CornerSwap(cube.UBL, 1),
		blind.CornerSwap(cube.UBR, 1),
		blind.CornerSwap(cube.UBL, 0),
	}
	assert.Equal(t, want, got)
	assert.True(t, got.Apply(s).CornersSolved())
}

func TestInspectEdges_SexyMove(t *testing.T) {
	s := mustScramble(t, sexy)
	got := blind.InspectEdges(s)

	want := blind.Sequence[blind.EdgeOp]{
		blind.EdgeSwap(cube.FR, 0),
		blind.EdgeSwap(cube.UB, 0),
		blind.EdgeSwap(cube.UR, 0),
		blind.EdgeSwap(cube.FR, 0),
	}
	assert.Equal(t, want, got)
	assert.True(t, got.Apply(s).EdgesSolved())
}

func TestInspect_TwistsAndFlipsLast(t *testing.T) {
	s := mustScramble(t, longAlg)

	corners := blind.InspectCorners(s)
	require.Len(t, corners, 10)
	assert.Equal(t, 8, corners.Count(blind.IsSwap))
	assert.Equal(t, blind.CornerTwist(cube.UFR, 2), corners[8])
	assert.Equal(t, blind.CornerTwist(cube.DBR, 1), corners[9])

	edges := blind.InspectEdges(s)
	require.Len(t, edges, 10)
	assert.Equal(t, blind.EdgeSwap(cube.UB, 1), edges[0])
	assert.Equal(t, blind.EdgeFlip(cube.BL), edges[8])
	assert.Equal(t, blind.EdgeFlip(cube.DF), edges[9])
}

// TestInspect_CycleWithoutBuffer covers a 2-cycle that does not touch the
// buffer: it needs a cycle break, so three swaps rather than one.
func TestInspect_CycleWithoutBuffer(t *testing.T) {
	s := cube.Solved()
	s.CP[0], s.CP[1] = 1, 0

	got := blind.InspectCorners(s)
	assert.Equal(t, blind.Sequence[blind.CornerOp]{
		blind.CornerSwap(cube.UBL, 0),
		blind.CornerSwap(cube.UBR, 0),
		blind.CornerSwap(cube.UBL, 0),
	}, got)
	assert.True(t, got.Apply(s).IsSolved())
}

func TestInspect_CycleThroughBuffer(t *testing.T) {
	s := cube.Solved()
	s.CP[cube.UBL], s.CP[cube.UFR] = cube.UFR, cube.UBL

	got := blind.InspectCorners(s)
	assert.Equal(t, blind.Sequence[blind.CornerOp]{blind.CornerSwap(cube.UBL, 0)}, got)
	assert.True(t, got.Apply(s).IsSolved())
}

// TestInspect_RoundTrip applies the inspected sequence to many reachable
// and arbitrary states and checks the piece kind ends solved.
func TestInspect_RoundTrip(t *testing.T) {
	states := make([]cube.State, 0, 2*numRands+18)
	for _, m := range cube.Moves() {
		states = append(states, cube.Solved().ApplyMoves(m))
	}
	for _, alg := range randomAlgs(numRands) {
		states = append(states, mustScramble(t, alg))
	}
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < numRands; i++ {
		states = append(states, randomState(rng))
	}

	for _, s := range states {
		corners := blind.InspectCorners(s)
		after := corners.Apply(s)
		assert.True(t, after.CornersSolved(), "corners of %v", s)
		assert.Equal(t, s.EP, after.EP)
		assert.Equal(t, s.EO, after.EO)

		edges := blind.InspectEdges(s)
		assert.True(t, edges.Apply(s).EdgesSolved(), "edges of %v", s)

		// one swap per transposition: swap count parity is the permutation parity
		assert.Equal(t, s.CornerParity(), corners.Count(blind.IsSwap)%2)
	}
}

func TestInspectEdges_SwapInspection(t *testing.T) {
	s := mustScramble(t, sexy)
	got := blind.InspectEdges(s, blind.WithSwapInspection())

	assert.Equal(t, blind.Sequence[blind.EdgeOp]{
		blind.EdgeSwap(cube.UR, 0),
		blind.EdgeSwap(cube.FR, 0),
		blind.EdgeSwap(cube.UB, 0),
	}, got)

	after := got.Apply(s)
	assert.False(t, after.EdgesSolved())
	assert.Equal(t, uint8(cube.UF), after.EP[cube.UR])
	assert.Equal(t, uint8(cube.UR), after.EP[cube.UF])
	assert.True(t, blind.ParityExchange(after).EdgesSolved())
}

func TestSwapLabels(t *testing.T) {
	r := blind.SwapLabels(5, 6)
	assert.Equal(t, uint8(6), r(5))
	assert.Equal(t, uint8(5), r(6))
	assert.Equal(t, uint8(7), r(7))
	assert.Equal(t, uint8(3), blind.Identity(3))

	assert.Panics(t, func() { blind.WithRelabel(nil) })
}
