package blind

import (
	"github.com/katalvlaran/blindcube/cube"
)

// Buffer slots.
const (
	// CornerBuffer is the corner slot every corner swap goes through (UFR).
	CornerBuffer = cube.UFR

	// EdgeBuffer is the edge slot every edge swap goes through (UF).
	EdgeBuffer = cube.UF

	// ParitySlot is the edge exchanged with EdgeBuffer by the
	// swap-inspection relabel (UR).
	ParitySlot = cube.UR
)

// OpType tags the variant of an operation.
type OpType uint8

const (
	// Swap exchanges the buffer with a target slot.
	Swap OpType = iota
	// Twist rotates one corner in place.
	Twist
	// Flip flips one edge in place.
	Flip
)

// String returns "swap", "twist" or "flip".
func (t OpType) String() string {
	switch t {
	case Swap:
		return "swap"
	case Twist:
		return "twist"
	case Flip:
		return "flip"
	default:
		return "unknown"
	}
}

// PieceKind says which piece set an operation acts on.
type PieceKind uint8

const (
	Corners PieceKind = iota
	Edges
)

// String returns "corners" or "edges".
func (k PieceKind) String() string {
	if k == Edges {
		return "edges"
	}

	return "corners"
}

// Operation is the capability shared by every operation kind. T is the
// concrete op type itself, so Alternatives stays in the same kind.
//
// Operations are comparable values; two ops are equal iff all their
// fields are equal.
type Operation[T any] interface {
	comparable

	// Apply returns the state after performing the op on s.
	Apply(s cube.State) cube.State

	// Alternatives returns every other legal op of the same kind,
	// excluding the receiver itself.
	Alternatives() []T

	// Piece reports the piece set the op acts on.
	Piece() PieceKind

	// Sticker names the target sticker from (target, orientation).
	Sticker() string

	// Key is a stable lookup key for algorithm tables, e.g. "swap:RUF".
	Key() string

	String() string
}

// Option configures inspection.
type Option func(*Options)

// Options holds inspection settings.
type Options struct {
	// Relabel is applied to permutation values before every comparison.
	// Identity by default.
	Relabel Relabel
}

// DefaultOptions returns options with the identity relabel.
func DefaultOptions() Options {
	return Options{Relabel: Identity}
}

// WithSwapInspection treats UR and UF as mutually substitutable while
// inspecting edges. Use it when the corner solution needed an odd number
// of swaps, so both piece kinds finish with matching parity.
func WithSwapInspection() Option {
	return func(o *Options) {
		o.Relabel = SwapLabels(ParitySlot, EdgeBuffer)
	}
}

// WithRelabel installs a custom relabel. Panics on nil.
func WithRelabel(r Relabel) Option {
	if r == nil {
		panic("blind: WithRelabel(nil)")
	}

	return func(o *Options) {
		o.Relabel = r
	}
}
