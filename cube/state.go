package cube

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// stateBytes is the number of bytes in a serialized State.
const stateBytes = 2*NumCorners + 2*NumEdges

// Solved returns the identity state: every piece home, every orientation 0.
func Solved() State {
	var s State
	for i := 0; i < NumCorners; i++ {
		s.CP[i] = uint8(i)
	}
	for i := 0; i < NumEdges; i++ {
		s.EP[i] = uint8(i)
	}

	return s
}

// Apply composes s with the move transform m and returns the new state.
// s itself is not modified.
//
//	new.CP[i] = s.CP[m.CP[i]]
//	new.CO[i] = (s.CO[m.CP[i]] + m.CO[i]) mod 3
//	new.EP[i] = s.EP[m.EP[i]]
//	new.EO[i] = (s.EO[m.EP[i]] + m.EO[i]) mod 2
func (s State) Apply(m State) State {
	var out State
	for i := 0; i < NumCorners; i++ {
		src := m.CP[i]
		out.CP[i] = s.CP[src]
		out.CO[i] = (s.CO[src] + m.CO[i]) % CornerMod
	}
	for i := 0; i < NumEdges; i++ {
		src := m.EP[i]
		out.EP[i] = s.EP[src]
		out.EO[i] = (s.EO[src] + m.EO[i]) % EdgeMod
	}

	return out
}

// ApplyMoves applies ms to s in order.
func (s State) ApplyMoves(ms ...Move) State {
	for _, m := range ms {
		s = s.Apply(m.Transform)
	}

	return s
}

// ApplyAlgorithm parses alg with ParseAlgorithm and applies it to s.
func (s State) ApplyAlgorithm(alg string) (State, error) {
	ms, err := ParseAlgorithm(alg)
	if err != nil {
		return s, err
	}

	return s.ApplyMoves(ms...), nil
}

// Inverse returns the group inverse of s, so that s.Apply(s.Inverse())
// and s.Inverse().Apply(s) are both the solved state.
func (s State) Inverse() State {
	var inv State
	for i := 0; i < NumCorners; i++ {
		p := s.CP[i]
		inv.CP[p] = uint8(i)
		inv.CO[p] = (CornerMod - s.CO[i]) % CornerMod
	}
	for i := 0; i < NumEdges; i++ {
		p := s.EP[i]
		inv.EP[p] = uint8(i)
		inv.EO[p] = (EdgeMod - s.EO[i]) % EdgeMod
	}

	return inv
}

// IsSolved reports whether s equals the identity state.
func (s State) IsSolved() bool {
	return s == Solved()
}

// CornersSolved reports whether every corner is home with orientation 0.
func (s State) CornersSolved() bool {
	id := Solved()

	return s.CP == id.CP && s.CO == id.CO
}

// EdgesSolved reports whether every edge is home with orientation 0.
func (s State) EdgesSolved() bool {
	id := Solved()

	return s.EP == id.EP && s.EO == id.EO
}

// Hash returns the xxhash of the state's 40 bytes. Equal states hash
// equally; unequal states may collide, so callers re-check with ==.
func (s State) Hash() uint64 {
	var buf [stateBytes]byte
	n := copy(buf[:], s.CP[:])
	n += copy(buf[n:], s.CO[:])
	n += copy(buf[n:], s.EP[:])
	copy(buf[n:], s.EO[:])

	return xxhash.Sum64(buf[:])
}

// CornerParity returns the parity (0 even, 1 odd) of the corner permutation.
func (s State) CornerParity() int {
	return parity(s.CP[:])
}

// EdgeParity returns the parity (0 even, 1 odd) of the edge permutation.
func (s State) EdgeParity() int {
	return parity(s.EP[:])
}

// Cycles decomposes perm into its non-trivial disjoint cycles. Each cycle
// starts at its smallest slot and follows slot -> perm[slot]; cycles are
// ordered by their first slot. Fixed points are omitted.
func Cycles(perm []uint8) [][]int {
	seen := make([]bool, len(perm))
	var out [][]int
	for start := range perm {
		if seen[start] || int(perm[start]) == start {
			seen[start] = true
			continue
		}
		var cyc []int
		for i := start; !seen[i]; i = int(perm[i]) {
			seen[i] = true
			cyc = append(cyc, i)
		}
		out = append(out, cyc)
	}

	return out
}

// parity sums (len-1) over all cycles of perm, mod 2.
func parity(perm []uint8) int {
	swaps := 0
	for _, c := range Cycles(perm) {
		swaps += len(c) - 1
	}

	return swaps % 2
}

// String renders s as four labelled arrays, e.g.
//
//	cp=[0 1 2 3 4 5 6 7] co=[0 0 0 0 0 0 0 0] ep=[...] eo=[...]
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cp=%v co=%v ep=%v eo=%v", s.CP, s.CO, s.EP, s.EO)

	return b.String()
}

// Describe lists the cycles and misoriented pieces of s by slot name,
// e.g. "corners: (UFR UBR DFR) twisted: UBL+1; edges: solved".
func (s State) Describe() string {
	corners := describe(s.CP[:], s.CO[:], CornerNames[:], "twisted")
	edges := describe(s.EP[:], s.EO[:], EdgeNames[:], "flipped")

	return "corners: " + corners + "; edges: " + edges
}

func describe(perm, ori []uint8, names []string, word string) string {
	var parts []string
	for _, c := range Cycles(perm) {
		labels := make([]string, len(c))
		for i, slot := range c {
			labels[i] = names[slot]
		}
		parts = append(parts, "("+strings.Join(labels, " ")+")")
	}
	var bad []string
	for i, o := range ori {
		if o != 0 {
			bad = append(bad, fmt.Sprintf("%s+%d", names[i], o))
		}
	}
	if len(bad) > 0 {
		parts = append(parts, word+": "+strings.Join(bad, " "))
	}
	if len(parts) == 0 {
		return "solved"
	}

	return strings.Join(parts, " ")
}
