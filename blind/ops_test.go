package blind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/blindcube/blind"
	"github.com/katalvlaran/blindcube/cube"
)

// TestCornerSwap_OrientationLaw checks new_co[t1] = (o + old_co[t2]) mod 3
// and new_co[t2] = (old_co[t1] + 3 - o) mod 3 on arbitrary states.
func TestCornerSwap_OrientationLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for n := 0; n < numRands; n++ {
		s := randomState(rng)
		for target := 0; target < cube.NumCorners; target++ {
			if target == blind.CornerBuffer {
				continue
			}
			for o := 0; o < cube.CornerMod; o++ {
				op := blind.CornerSwap(target, o)
				got := op.Apply(s)

				b := blind.CornerBuffer
				assert.Equal(t, s.CP[target], got.CP[b])
				assert.Equal(t, s.CP[b], got.CP[target])
				assert.Equal(t, (uint8(o)+s.CO[target])%3, got.CO[b])
				assert.Equal(t, (s.CO[b]+3-uint8(o))%3, got.CO[target])
				// edges are never touched by a corner op
				assert.Equal(t, s.EP, got.EP)
				assert.Equal(t, s.EO, got.EO)
			}
		}
	}
}

func TestEdgeSwap_OrientationLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for n := 0; n < numRands; n++ {
		s := randomState(rng)
		for target := 0; target < cube.NumEdges; target++ {
			if target == blind.EdgeBuffer {
				continue
			}
			for o := 0; o < cube.EdgeMod; o++ {
				got := blind.EdgeSwap(target, o).Apply(s)

				b := blind.EdgeBuffer
				assert.Equal(t, s.EP[target], got.EP[b])
				assert.Equal(t, s.EP[b], got.EP[target])
				assert.Equal(t, (s.EO[target]+uint8(o))%2, got.EO[b])
				assert.Equal(t, (s.EO[b]+uint8(o))%2, got.EO[target])
				assert.Equal(t, s.CP, got.CP)
				assert.Equal(t, s.CO, got.CO)
			}
		}
	}
}

func TestTwistAndFlip(t *testing.T) {
	s := cube.Solved()
	s.CO[cube.UBL] = 2
	s.EO[cube.DB] = 1

	twisted := blind.CornerTwist(cube.UBL, 2).Apply(s)
	assert.Zero(t, twisted.CO[cube.UBL])

	// a twist of 1 on orientation 0 leaves 2
	assert.Equal(t, uint8(2), blind.CornerTwist(cube.DFR, 1).Apply(s).CO[cube.DFR])

	flipped := blind.EdgeFlip(cube.DB).Apply(s)
	assert.Zero(t, flipped.EO[cube.DB])
	assert.Equal(t, uint8(1), blind.EdgeFlip(cube.DB).Apply(flipped).EO[cube.DB])
}

func TestApply_LeavesInputUntouched(t *testing.T) {
	s := mustScramble(t, sexy)
	before := s
	_ = blind.CornerSwap(cube.DFR, 2).Apply(s)
	_ = blind.EdgeFlip(cube.UF).Apply(s)
	assert.Equal(t, before, s)
}

// TestAlternatives_Counts checks domain sizes and the no-self rule.
func TestAlternatives_Counts(t *testing.T) {
	for target := 0; target < cube.NumCorners; target++ {
		for o := 0; o < cube.CornerMod; o++ {
			op := blind.CornerSwap(target, o)
			alts := op.Alternatives()
			assert.Len(t, alts, 23)
			assert.NotContains(t, alts, op)
			for _, a := range alts {
				assert.Equal(t, blind.Swap, a.Type)
				assert.Equal(t, uint8(blind.CornerBuffer), a.Buffer)
			}
		}
		for o := 1; o < cube.CornerMod; o++ {
			op := blind.CornerTwist(target, o)
			alts := op.Alternatives()
			assert.Len(t, alts, 15)
			assert.NotContains(t, alts, op)
		}
	}
	for target := 0; target < cube.NumEdges; target++ {
		for o := 0; o < cube.EdgeMod; o++ {
			op := blind.EdgeSwap(target, o)
			alts := op.Alternatives()
			assert.Len(t, alts, 23)
			assert.NotContains(t, alts, op)
		}
		op := blind.EdgeFlip(target)
		alts := op.Alternatives()
		assert.Len(t, alts, 11)
		assert.NotContains(t, alts, op)
	}
}

func TestAlternatives_Mixed(t *testing.T) {
	c := blind.FromCorner(blind.CornerTwist(cube.DBL, 1))
	e := blind.FromEdge(blind.EdgeFlip(cube.UL))

	ca := c.Alternatives()
	assert.Len(t, ca, 15)
	assert.NotContains(t, ca, c)
	for _, a := range ca {
		assert.Equal(t, blind.Corners, a.Piece())
	}

	ea := e.Alternatives()
	assert.Len(t, ea, 11)
	for _, a := range ea {
		assert.Equal(t, blind.Edges, a.Piece())
	}

	s := mustScramble(t, longAlg)
	assert.Equal(t, blind.CornerTwist(cube.DBL, 1).Apply(s), c.Apply(s))
	assert.Equal(t, blind.EdgeFlip(cube.UL).Apply(s), e.Apply(s))
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "swap(UFR,DFR,1)", blind.CornerSwap(cube.DFR, 1).String())
	assert.Equal(t, "FRD", blind.CornerSwap(cube.DFR, 1).Sticker())
	assert.Equal(t, "swap:FRD", blind.CornerSwap(cube.DFR, 1).Key())
	assert.Equal(t, "twist(UBL,2)", blind.CornerTwist(cube.UBL, 2).String())
	assert.Equal(t, "twist:LUB", blind.CornerTwist(cube.UBL, 2).Key())

	assert.Equal(t, "swap(UF,UR,1)", blind.EdgeSwap(cube.UR, 1).String())
	assert.Equal(t, "RU", blind.EdgeSwap(cube.UR, 1).Sticker())
	assert.Equal(t, "swap:DB", blind.EdgeSwap(cube.DB, 0).Key())
	assert.Equal(t, "flip(DB)", blind.EdgeFlip(cube.DB).String())
	assert.Equal(t, "flip:DB", blind.EdgeFlip(cube.DB).Key())

	m := blind.FromEdge(blind.EdgeFlip(cube.DB))
	assert.Equal(t, "flip(DB)", m.String())
	assert.Equal(t, "flip:DB", m.Key())
	assert.Equal(t, "DB", m.Sticker())

	assert.Equal(t, "swap", blind.Swap.String())
	assert.Equal(t, "edges", blind.Edges.String())
}
