package blind

import "github.com/katalvlaran/blindcube/cube"

// Relabel maps a permutation value to the label inspection compares it
// under. It must be a bijection on the piece indices.
type Relabel func(v uint8) uint8

// Identity leaves every label unchanged.
func Identity(v uint8) uint8 { return v }

// SwapLabels returns a relabel exchanging a and b.
func SwapLabels(a, b int) Relabel {
	la, lb := uint8(a), uint8(b)

	return func(v uint8) uint8 {
		switch v {
		case la:
			return lb
		case lb:
			return la
		default:
			return v
		}
	}
}

// pieceView exposes one piece kind of a State to the shared tracer.
type pieceView[T Operation[T]] struct {
	buffer int
	perm   func(s *cube.State) []uint8
	ori    func(s *cube.State) []uint8
	swap   func(target int, ori uint8) T
	fix    func(target int, ori uint8) T
}

var cornerView = pieceView[CornerOp]{
	buffer: CornerBuffer,
	perm:   func(s *cube.State) []uint8 { return s.CP[:] },
	ori:    func(s *cube.State) []uint8 { return s.CO[:] },
	swap:   func(t int, o uint8) CornerOp { return CornerSwap(t, int(o)) },
	fix:    func(t int, o uint8) CornerOp { return CornerTwist(t, int(o)) },
}

var edgeView = pieceView[EdgeOp]{
	buffer: EdgeBuffer,
	perm:   func(s *cube.State) []uint8 { return s.EP[:] },
	ori:    func(s *cube.State) []uint8 { return s.EO[:] },
	swap:   func(t int, o uint8) EdgeOp { return EdgeSwap(t, int(o)) },
	fix:    func(t int, _ uint8) EdgeOp { return EdgeFlip(t) },
}

// InspectCorners returns the corner sequence of the fixed-buffer method
// for s. Applying it to s leaves every corner home with orientation 0.
// A state whose corners are already solved yields an empty sequence.
func InspectCorners(s cube.State) Sequence[CornerOp] {
	return trace(s, cornerView, Identity)
}

// InspectEdges returns the edge sequence of the fixed-buffer method for s.
// With WithSwapInspection the result leaves UF and UR exchanged instead of
// solved; everything else ends home with orientation 0.
func InspectEdges(s cube.State, opts ...Option) Sequence[EdgeOp] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return trace(s, edgeView, o.Relabel)
}

// trace runs the cycle decomposition for one piece kind:
//
//  1. While the buffer holds a foreign piece, swap it home, carrying the
//     buffer's orientation (read before the swap).
//  2. When the buffer is home, seed the next untraced cycle by swapping the
//     buffer with the lowest unsolved slot, and go back to 1.
//  3. Once every piece is home, emit one Twist/Flip per misoriented slot.
//
// Every swap fixes at least one more piece, so the loop ends after at most
// 1.5*N swaps.
func trace[T Operation[T]](s cube.State, v pieceView[T], relabel Relabel) Sequence[T] {
	var seq Sequence[T]
	cur := s // working copy; s is never touched
	// emit records op and applies it, keeping cur in step with seq.
	emit := func(op T) {
		seq = append(seq, op)
		cur = op.Apply(cur)
	}
	b := v.buffer // fixed buffer slot for this piece kind

	for {
		// 1) Follow the cycle through the buffer.
		for int(relabel(v.perm(&cur)[b])) != b {
			emit(v.swap(int(relabel(v.perm(&cur)[b])), v.ori(&cur)[b]))
		}

		// 2) Break into the next cycle, scanning slots in ascending order.
		// The buffer is home here, so it is never picked.
		next := -1
		for i, p := range v.perm(&cur) {
			if int(relabel(p)) != i {
				next = i
				break
			}
		}
		if next < 0 {
			break // every piece is home
		}
		// the buffer's current orientation travels with it
		emit(v.swap(next, v.ori(&cur)[b]))
	}

	// 3) Resolve pieces that are home but misoriented.
	for i := range v.ori(&cur) {
		if o := v.ori(&cur)[i]; o != 0 {
			emit(v.fix(i, o))
		}
	}

	return seq
}
