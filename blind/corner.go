package blind

import (
	"fmt"

	"github.com/katalvlaran/blindcube/cube"
)

// CornerOp is a corner Swap or Twist.
//
// For a Swap, Buffer and Target are the exchanged slots and Orientation
// (0..2) is the twist carried across. For a Twist, Target is the twisted
// slot and Orientation (1..2) the amount removed; Buffer is unused.
type CornerOp struct {
	Type        OpType
	Buffer      uint8
	Target      uint8
	Orientation uint8
}

// CornerSwap builds Swap(CornerBuffer, target, orientation).
func CornerSwap(target, orientation int) CornerOp {
	return CornerOp{Type: Swap, Buffer: CornerBuffer, Target: uint8(target), Orientation: uint8(orientation)}
}

// CornerTwist builds Twist(target, orientation).
func CornerTwist(target, orientation int) CornerOp {
	return CornerOp{Type: Twist, Target: uint8(target), Orientation: uint8(orientation)}
}

// Apply performs the op on s.
//
// Swap(t1, t2, o):  perm slots exchanged,
//
//	co[t1] = (o + old[t2]) mod 3
//	co[t2] = (old[t1] + 3 - o) mod 3
//
// Twist(t, o):      co[t] = (old[t] + 3 - o) mod 3
//
// When t1 == t2 the second assignment wins.
func (op CornerOp) Apply(s cube.State) cube.State {
	switch op.Type {
	case Swap:
		t1, t2 := op.Buffer, op.Target
		s.CP[t1], s.CP[t2] = s.CP[t2], s.CP[t1]
		o1, o2 := s.CO[t1], s.CO[t2]
		s.CO[t1] = (op.Orientation + o2) % cube.CornerMod
		s.CO[t2] = (o1 + cube.CornerMod - op.Orientation) % cube.CornerMod
	case Twist:
		t := op.Target
		s.CO[t] = (s.CO[t] + cube.CornerMod - op.Orientation) % cube.CornerMod
	}

	return s
}

// Alternatives returns the 23 other swaps (all targets x orientations 0..2)
// for a Swap, or the 15 other twists (all targets x orientations 1..2)
// for a Twist. The buffer is kept fixed.
func (op CornerOp) Alternatives() []CornerOp {
	var out []CornerOp
	switch op.Type {
	case Swap:
		out = make([]CornerOp, 0, cube.NumCorners*cube.CornerMod-1)
		for t := 0; t < cube.NumCorners; t++ {
			for o := 0; o < cube.CornerMod; o++ {
				alt := CornerOp{Type: Swap, Buffer: op.Buffer, Target: uint8(t), Orientation: uint8(o)}
				if alt != op {
					out = append(out, alt)
				}
			}
		}
	case Twist:
		out = make([]CornerOp, 0, cube.NumCorners*(cube.CornerMod-1)-1)
		for t := 0; t < cube.NumCorners; t++ {
			for o := 1; o < cube.CornerMod; o++ {
				alt := CornerTwist(t, o)
				if alt != op {
					out = append(out, alt)
				}
			}
		}
	}

	return out
}

// Piece returns Corners.
func (op CornerOp) Piece() PieceKind { return Corners }

// Sticker names the target corner rotated by the orientation,
// e.g. Swap(UFR, DFR, 1) -> "FRD".
func (op CornerOp) Sticker() string {
	return rotate(cube.CornerNames[op.Target], op.Orientation)
}

// Key returns "<type>:<sticker>".
func (op CornerOp) Key() string {
	return key(op.Type, op.Sticker())
}

// String renders "swap(UFR,DFR,1)" or "twist(UBL,2)".
func (op CornerOp) String() string {
	if op.Type == Twist {
		return fmt.Sprintf("twist(%s,%d)", cube.CornerNames[op.Target], op.Orientation)
	}

	return fmt.Sprintf("swap(%s,%s,%d)", cube.CornerNames[op.Buffer], cube.CornerNames[op.Target], op.Orientation)
}
