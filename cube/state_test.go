package cube_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindcube/cube"
)

const sexy = "R U R' U'"

// scrambled returns a fixed non-trivial state used across tests.
func scrambled(t *testing.T) cube.State {
	t.Helper()
	s, err := cube.Scramble("R U2 F' L D B2 R' U F2 D' L2 B")
	require.NoError(t, err)

	return s
}

func TestSolved_IsIdentity(t *testing.T) {
	s := cube.Solved()
	assert.True(t, s.IsSolved())
	assert.True(t, s.CornersSolved())
	assert.True(t, s.EdgesSolved())
	assert.False(t, cube.State{}.IsSolved()) // zero value is not the identity
	assert.Equal(t, "corners: solved; edges: solved", s.Describe())
}

func TestApply_IdentityMoveIsNoOp(t *testing.T) {
	s := scrambled(t)
	assert.Equal(t, s, s.Apply(cube.Solved()))
	assert.Equal(t, s, cube.Solved().Apply(s))
}

func TestApply_Associative(t *testing.T) {
	a := scrambled(t)
	b, err := cube.Scramble(sexy)
	require.NoError(t, err)
	c, err := cube.Scramble("F2 B' D")
	require.NoError(t, err)

	assert.Equal(t, a.Apply(b).Apply(c), a.Apply(b.Apply(c)))
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	s := cube.Solved()
	r, err := cube.ParseMove("R")
	require.NoError(t, err)

	_ = s.Apply(r.Transform)
	assert.True(t, s.IsSolved())
}

func TestQuarterTurns_FourFoldIsIdentity(t *testing.T) {
	start := scrambled(t)
	for _, face := range []string{"U", "R", "F", "D", "L", "B"} {
		m, err := cube.ParseMove(face)
		require.NoError(t, err)

		s := start
		for i := 0; i < 4; i++ {
			s = s.ApplyMoves(m)
		}
		assert.Equal(t, start, s, "face %s", face)

		once := start.ApplyMoves(m)
		assert.NotEqual(t, start, once, "face %s must move something", face)
	}
}

func TestMoves_InverseAndHalfTurn(t *testing.T) {
	for _, m := range cube.Moves() {
		inv := m.Transform.Inverse()
		assert.True(t, m.Transform.Apply(inv).IsSolved(), m.Name)
		assert.True(t, inv.Apply(m.Transform).IsSolved(), m.Name)
	}

	r, _ := cube.ParseMove("R")
	r2, _ := cube.ParseMove("R2")
	rp, _ := cube.ParseMove("R'")
	assert.Equal(t, r2.Transform, r.Transform.Apply(r.Transform))
	assert.Equal(t, rp.Transform, r2.Transform.Apply(r.Transform))
	assert.Len(t, cube.Moves(), 18)
}

func TestMoves_PreserveOrientationSums(t *testing.T) {
	s := scrambled(t)
	co, eo := 0, 0
	for _, o := range s.CO {
		co += int(o)
	}
	for _, o := range s.EO {
		eo += int(o)
	}
	assert.Zero(t, co%cube.CornerMod)
	assert.Zero(t, eo%cube.EdgeMod)
}

func TestSexyMove_OrderSix(t *testing.T) {
	s := cube.Solved()
	var err error
	for i := 0; i < 6; i++ {
		s, err = s.ApplyAlgorithm(sexy)
		require.NoError(t, err)
		if i < 5 {
			assert.False(t, s.IsSolved(), "repetition %d", i+1)
		}
	}
	assert.True(t, s.IsSolved())
}

func TestSexyMove_State(t *testing.T) {
	s, err := cube.Scramble(sexy)
	require.NoError(t, err)

	assert.Equal(t, [cube.NumCorners]uint8{1, 0, 5, 3, 4, 2, 6, 7}, s.CP)
	assert.Equal(t, [cube.NumCorners]uint8{0, 2, 2, 0, 0, 2, 0, 0}, s.CO)
	assert.Equal(t, [cube.NumEdges]uint8{0, 1, 4, 3, 5, 2, 6, 7, 8, 9, 10, 11}, s.EP)
	assert.Equal(t, [cube.NumEdges]uint8{}, s.EO)
	assert.Equal(t,
		"corners: (UBL UBR) (UFR DFR) twisted: UBR+2 UFR+2 DFR+2; edges: (FR UB UR)",
		s.Describe())
}

func TestParse_Errors(t *testing.T) {
	_, err := cube.ParseMove("")
	assert.True(t, errors.Is(err, cube.ErrEmptyMove))

	_, err = cube.ParseMove("Q")
	assert.True(t, errors.Is(err, cube.ErrUnknownMove))

	_, err = cube.ParseAlgorithm("R U M")
	assert.ErrorIs(t, err, cube.ErrUnknownMove)

	_, err = cube.Scramble("R3")
	assert.ErrorIs(t, err, cube.ErrUnknownMove)

	ms, err := cube.ParseAlgorithm("   ")
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestParse_Aliases(t *testing.T) {
	a, err := cube.ParseMove("U2'")
	require.NoError(t, err)
	assert.Equal(t, "U2", a.Name)

	b, err := cube.ParseMove("U’")
	require.NoError(t, err)
	assert.Equal(t, "U'", b.String())
}

func TestHash_FollowsEquality(t *testing.T) {
	a := scrambled(t)
	b := scrambled(t)
	assert.Equal(t, a.Hash(), b.Hash())

	r, _ := cube.Scramble("R")
	u, _ := cube.Scramble("U")
	assert.NotEqual(t, r.Hash(), u.Hash())
}

func TestParity(t *testing.T) {
	assert.Zero(t, cube.Solved().CornerParity())

	r, err := cube.Scramble("R")
	require.NoError(t, err)
	assert.Equal(t, 1, r.CornerParity()) // one 4-cycle of corners
	assert.Equal(t, 1, r.EdgeParity())   // one 4-cycle of edges

	s, err := cube.Scramble(sexy)
	require.NoError(t, err)
	assert.Zero(t, s.CornerParity()) // two 2-cycles
	assert.Zero(t, s.EdgeParity())   // one 3-cycle
}

func TestCycles(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1}}, cube.Cycles([]uint8{1, 0, 2, 3}))
	assert.Equal(t, [][]int{{0, 2, 1}}, cube.Cycles([]uint8{2, 0, 1}))
	assert.Nil(t, cube.Cycles([]uint8{0, 1, 2}))
}
