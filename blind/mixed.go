package blind

import "github.com/katalvlaran/blindcube/cube"

// MixedOp wraps either a CornerOp or an EdgeOp so both kinds can share one
// sequence. Kind selects the active member; the other is the zero value.
type MixedOp struct {
	Kind   PieceKind
	Corner CornerOp
	Edge   EdgeOp
}

// FromCorner wraps a corner op.
func FromCorner(op CornerOp) MixedOp {
	return MixedOp{Kind: Corners, Corner: op}
}

// FromEdge wraps an edge op.
func FromEdge(op EdgeOp) MixedOp {
	return MixedOp{Kind: Edges, Edge: op}
}

// Apply dispatches to the wrapped op.
func (op MixedOp) Apply(s cube.State) cube.State {
	if op.Kind == Edges {
		return op.Edge.Apply(s)
	}

	return op.Corner.Apply(s)
}

// Alternatives wraps the wrapped op's alternatives; corner steps only get
// corner alternatives and edge steps only edge alternatives.
func (op MixedOp) Alternatives() []MixedOp {
	if op.Kind == Edges {
		alts := op.Edge.Alternatives()
		out := make([]MixedOp, len(alts))
		for i, a := range alts {
			out[i] = FromEdge(a)
		}

		return out
	}
	alts := op.Corner.Alternatives()
	out := make([]MixedOp, len(alts))
	for i, a := range alts {
		out[i] = FromCorner(a)
	}

	return out
}

// Piece reports the wrapped kind.
func (op MixedOp) Piece() PieceKind { return op.Kind }

// Sticker dispatches to the wrapped op.
func (op MixedOp) Sticker() string {
	if op.Kind == Edges {
		return op.Edge.Sticker()
	}

	return op.Corner.Sticker()
}

// Key dispatches to the wrapped op.
func (op MixedOp) Key() string {
	if op.Kind == Edges {
		return op.Edge.Key()
	}

	return op.Corner.Key()
}

// String dispatches to the wrapped op.
func (op MixedOp) String() string {
	if op.Kind == Edges {
		return op.Edge.String()
	}

	return op.Corner.String()
}

// Mix concatenates a corner sequence and an edge sequence, corners first.
func Mix(corners Sequence[CornerOp], edges Sequence[EdgeOp]) Sequence[MixedOp] {
	out := make(Sequence[MixedOp], 0, len(corners)+len(edges))
	for _, op := range corners {
		out = append(out, FromCorner(op))
	}
	for _, op := range edges {
		out = append(out, FromEdge(op))
	}

	return out
}
