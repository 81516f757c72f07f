// Package cube models the combinatorial state of a 3x3x3 cube as piece
// permutation plus piece orientation, and implements the group composition
// law every other package builds on.
//
// What:
//
//   - State: four fixed-length arrays. CP/EP hold the corner/edge permutation
//     (CP[i] is the piece sitting in slot i), CO/EO hold orientations mod 3 and
//     mod 2. State is a comparable value type and is freely copied, compared
//     with == and used as a map key.
//   - Apply: the composition law
//     new.CP[i] = old.CP[m.CP[i]], new.CO[i] = (old.CO[m.CP[i]] + m.CO[i]) mod 3,
//     and the same for edges mod 2.
//   - Face turns U R F D L B with their squares and inverses, and a small
//     parser for space-separated move tokens ("R U R' U'").
//
// Slot convention:
//
//	corners: UBL UBR UFR UFL DFL DFR DBR DBL   (0..7)
//	edges:   BL BR FR FL UB UR UF UL DF DR DB DL (0..11)
//
// Preconditions:
//
//	CP and EP are assumed to be permutations of 0..N-1. Nothing in this
//	package re-validates that; a non-bijective State gives unspecified
//	results rather than an error.
//
// Errors:
//
//   - ErrEmptyMove    an empty move token was supplied.
//   - ErrUnknownMove  a move token is not a recognised face turn.
//
// Complexity:
//
//   - Apply, Inverse, Hash: O(1) (fixed 40-byte state).
//   - ParseAlgorithm:       O(len(s)).
package cube
