package notation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindcube/cube"
	"github.com/katalvlaran/blindcube/notation"
)

func TestExpand(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "R U R' U'", "R U R' U'"},
		{"commutator", "[R, U]", "R U R' U'"},
		{"glued", "[R,U]", "R U R' U'"},
		{"long commutator", "[R U R', D]", "R U R' D R U' R' D'"},
		{"conjugate", "[D: R U R']", "D R U R' D'"},
		{"right assoc", "[U: R' D R, U2]", "U R' D R U2 R' D' R U2 U'"},
		{"slash", "[R/U]", "R U R R U' R"},
		{"nested", "[[R, U], D]", "R U R' U' D U R U' R' D'"},
		{"repeat", "(R U)2", "R U R U"},
		{"inverse group", "(R U2 F)'", "F' U2 R'"},
		{"repeat inverse", "(R U)2'", "U' R' U' R'"},
		{"setup then group", "F (R U R' U')", "F R U R' U'"},
		{"typographic prime", "[R’, U]", "R' U R U'"},
		{"wide and slice", "[Rw: M2']", "Rw M2' Rw'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := notation.Expand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"[R, U", notation.ErrUnbalanced},
		{"R U]", notation.ErrUnbalanced},
		{"(R U]", notation.ErrUnbalanced},
		{"((R)", notation.ErrUnbalanced},
		{"[R, ]", notation.ErrEmptyOperand},
		{"[: U]", notation.ErrEmptyOperand},
		{"R, U", notation.ErrUnexpectedToken},
		{"(R, U)", notation.ErrUnexpectedToken},
		{"(R U)4611686018427387904", notation.ErrUnexpectedToken},
		{"(R)99999999999999999999", notation.ErrUnexpectedToken},
		{"(R)100", notation.ErrUnexpectedToken},
		{"(R)1x", notation.ErrUnexpectedToken},
		{"((((R U)99)99)99)", notation.ErrTooLong},
		{"[((R U)99)99, ((R U)99)99]", notation.ErrTooLong},
	}
	for _, tc := range cases {
		_, err := notation.Expand(tc.in)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
}

func TestExpand_RepeatLimit(t *testing.T) {
	got, err := notation.Parse("(R)99")
	require.NoError(t, err)
	assert.Len(t, got, notation.MaxRepeat)

	// a glued letter after ")" is the next turn, not a count
	got, err = notation.Parse("(R)U")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "U"}, got)
}

func TestNormalize(t *testing.T) {
	got, err := notation.Normalize("[R/U]")
	require.NoError(t, err)
	assert.Equal(t, "R U R2 U' R", got)

	got, err = notation.Normalize("[R U, U' R']")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestInvert(t *testing.T) {
	assert.Equal(t, []string{"F", "U2", "R'"}, notation.Invert([]string{"R", "U2", "F'"}))
	assert.Equal(t, []string{"R"}, notation.Invert([]string{"R4", "R3"}))
	assert.Empty(t, notation.Invert(nil))
}

func TestSimplify(t *testing.T) {
	in := []string{"R", "R", "U", "U'", "R'", "F"}
	assert.Equal(t, []string{"R", "F"}, notation.Simplify(in))
	assert.Equal(t, []string{"U2"}, notation.Simplify([]string{"U'", "U'"}))
	assert.Empty(t, notation.Simplify([]string{"D2", "D2'"}))
}

// TestInvert_UndoesOnCube checks inversion against the move tables.
func TestInvert_UndoesOnCube(t *testing.T) {
	for _, alg := range []string{
		"[R U R', D]",
		"[U: R' D R, U2]",
		"[R/U] F2 (L D')2",
	} {
		turns, err := notation.Parse(alg)
		require.NoError(t, err)

		s, err := cube.Scramble(strings.Join(turns, " "))
		require.NoError(t, err)
		s, err = s.ApplyAlgorithm(strings.Join(notation.Invert(turns), " "))
		require.NoError(t, err)
		assert.True(t, s.IsSolved(), alg)

		assert.Empty(t, notation.Simplify(append(turns, notation.Invert(turns)...)), alg)
	}
}

// TestNormalize_PreservesState checks simplification never changes the
// resulting cube state.
func TestNormalize_PreservesState(t *testing.T) {
	alg := "[R/U] [D: R U R'] (F F) F2 U U U"
	raw, err := notation.Expand(alg)
	require.NoError(t, err)
	simple, err := notation.Normalize(alg)
	require.NoError(t, err)

	a, err := cube.Scramble(raw)
	require.NoError(t, err)
	b, err := cube.Scramble(simple)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Less(t, len(strings.Fields(simple)), len(strings.Fields(raw)))
}
