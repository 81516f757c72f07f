package blind_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindcube/cube"
)

const (
	sexy     = "R U R' U'"
	longAlg  = "R U2 F' L D B2 R' U F2 D' L2 B"
	seedDet  = 42
	numRands = 200
)

// mustScramble applies alg to the solved cube or fails the test.
func mustScramble(t testing.TB, alg string) cube.State {
	t.Helper()
	s, err := cube.Scramble(alg)
	require.NoError(t, err)

	return s
}

// randomAlgs returns n deterministic random move strings of 25 turns.
func randomAlgs(n int) []string {
	rng := rand.New(rand.NewSource(seedDet))
	moves := cube.Moves()
	out := make([]string, n)
	for i := range out {
		toks := make([]string, 25)
		for j := range toks {
			toks[j] = moves[rng.Intn(len(moves))].Name
		}
		out[i] = strings.Join(toks, " ")
	}

	return out
}

// randomState returns an arbitrary (not necessarily reachable) state with
// random permutations and orientations.
func randomState(rng *rand.Rand) cube.State {
	var s cube.State
	for i, p := range rng.Perm(cube.NumCorners) {
		s.CP[i] = uint8(p)
		s.CO[i] = uint8(rng.Intn(cube.CornerMod))
	}
	for i, p := range rng.Perm(cube.NumEdges) {
		s.EP[i] = uint8(p)
		s.EO[i] = uint8(rng.Intn(cube.EdgeMod))
	}

	return s
}
