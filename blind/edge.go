package blind

import (
	"fmt"

	"github.com/katalvlaran/blindcube/cube"
)

// EdgeOp is an edge Swap or Flip.
//
// For a Swap, Buffer and Target are the exchanged slots and Orientation
// (0..1) is added to both. For a Flip, Target is the flipped slot and
// Orientation is always 1.
type EdgeOp struct {
	Type        OpType
	Buffer      uint8
	Target      uint8
	Orientation uint8
}

// EdgeSwap builds Swap(EdgeBuffer, target, orientation).
func EdgeSwap(target, orientation int) EdgeOp {
	return EdgeOp{Type: Swap, Buffer: EdgeBuffer, Target: uint8(target), Orientation: uint8(orientation)}
}

// EdgeFlip builds Flip(target).
func EdgeFlip(target int) EdgeOp {
	return EdgeOp{Type: Flip, Target: uint8(target), Orientation: 1}
}

// Apply performs the op on s.
//
// Swap(t1, t2, o):  perm slots exchanged,
//
//	eo[t1] = (old[t2] + o) mod 2
//	eo[t2] = (old[t1] + o) mod 2
//
// Flip(t):          eo[t] = (old[t] + 1) mod 2
func (op EdgeOp) Apply(s cube.State) cube.State {
	switch op.Type {
	case Swap:
		t1, t2 := op.Buffer, op.Target
		s.EP[t1], s.EP[t2] = s.EP[t2], s.EP[t1]
		o1, o2 := s.EO[t1], s.EO[t2]
		s.EO[t1] = (o2 + op.Orientation) % cube.EdgeMod
		s.EO[t2] = (o1 + op.Orientation) % cube.EdgeMod
	case Flip:
		t := op.Target
		s.EO[t] = (s.EO[t] + 1) % cube.EdgeMod
	}

	return s
}

// Alternatives returns the 23 other swaps (all targets x orientations 0..1)
// for a Swap, or the 11 flips of the other edges for a Flip.
func (op EdgeOp) Alternatives() []EdgeOp {
	var out []EdgeOp
	switch op.Type {
	case Swap:
		out = make([]EdgeOp, 0, cube.NumEdges*cube.EdgeMod-1)
		for t := 0; t < cube.NumEdges; t++ {
			for o := 0; o < cube.EdgeMod; o++ {
				alt := EdgeOp{Type: Swap, Buffer: op.Buffer, Target: uint8(t), Orientation: uint8(o)}
				if alt != op {
					out = append(out, alt)
				}
			}
		}
	case Flip:
		out = make([]EdgeOp, 0, cube.NumEdges-1)
		for t := 0; t < cube.NumEdges; t++ {
			if alt := EdgeFlip(t); alt != op {
				out = append(out, alt)
			}
		}
	}

	return out
}

// Piece returns Edges.
func (op EdgeOp) Piece() PieceKind { return Edges }

// Sticker names the target edge, reversed when the swap carries a flip:
// Swap(UF, UR, 1) -> "RU". A Flip names the edge as is.
func (op EdgeOp) Sticker() string {
	if op.Type == Flip {
		return cube.EdgeNames[op.Target]
	}

	return rotate(cube.EdgeNames[op.Target], op.Orientation)
}

// Key returns "<type>:<sticker>".
func (op EdgeOp) Key() string {
	return key(op.Type, op.Sticker())
}

// String renders "swap(UF,UR,1)" or "flip(DB)".
func (op EdgeOp) String() string {
	if op.Type == Flip {
		return fmt.Sprintf("flip(%s)", cube.EdgeNames[op.Target])
	}

	return fmt.Sprintf("swap(%s,%s,%d)", cube.EdgeNames[op.Buffer], cube.EdgeNames[op.Target], op.Orientation)
}
