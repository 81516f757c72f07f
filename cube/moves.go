package cube

import (
	"fmt"
	"strings"
)

// faceTurns holds the clockwise quarter turn of each face.
var faceTurns = map[byte]State{
	'U': {
		CP: [NumCorners]uint8{3, 0, 1, 2, 4, 5, 6, 7},
		EP: [NumEdges]uint8{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11},
	},
	'R': {
		CP: [NumCorners]uint8{0, 2, 5, 3, 4, 6, 1, 7},
		CO: [NumCorners]uint8{0, 1, 2, 0, 0, 1, 2, 0},
		EP: [NumEdges]uint8{0, 5, 9, 3, 4, 2, 6, 7, 8, 1, 10, 11},
	},
	'F': {
		CP: [NumCorners]uint8{0, 1, 3, 4, 5, 2, 6, 7},
		CO: [NumCorners]uint8{0, 0, 1, 2, 1, 2, 0, 0},
		EP: [NumEdges]uint8{0, 1, 6, 8, 4, 5, 3, 7, 2, 9, 10, 11},
		EO: [NumEdges]uint8{0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0},
	},
	'D': {
		CP: [NumCorners]uint8{0, 1, 2, 3, 7, 4, 5, 6},
		EP: [NumEdges]uint8{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10},
	},
	'L': {
		CP: [NumCorners]uint8{7, 1, 2, 0, 3, 5, 6, 4},
		CO: [NumCorners]uint8{2, 0, 0, 1, 2, 0, 0, 1},
		EP: [NumEdges]uint8{11, 1, 2, 7, 4, 5, 6, 0, 8, 9, 10, 3},
	},
	'B': {
		CP: [NumCorners]uint8{1, 6, 2, 3, 4, 5, 7, 0},
		CO: [NumCorners]uint8{1, 2, 0, 0, 0, 0, 1, 2},
		EP: [NumEdges]uint8{4, 10, 2, 3, 1, 5, 6, 7, 8, 9, 0, 11},
		EO: [NumEdges]uint8{1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0},
	},
}

// faceOrder fixes the order in which Moves lists turns.
const faceOrder = "URFDLB"

// moveTable maps every accepted token to its Move.
var moveTable = buildMoveTable()

func buildMoveTable() map[string]Move {
	table := make(map[string]Move, 4*len(faceOrder))
	for i := 0; i < len(faceOrder); i++ {
		f := faceOrder[i]
		q := faceTurns[f]
		half := q.Apply(q)
		name := string(f)

		table[name] = Move{Name: name, Transform: q}
		table[name+"2"] = Move{Name: name + "2", Transform: half}
		table[name+"'"] = Move{Name: name + "'", Transform: q.Inverse()}
		// "R2'" is the same turn as "R2"; keep the canonical name.
		table[name+"2'"] = Move{Name: name + "2", Transform: half}
	}

	return table
}

// Moves returns the 18 face turns in U R F D L B order, each as
// quarter, half, inverse.
func Moves() []Move {
	out := make([]Move, 0, 3*len(faceOrder))
	for i := 0; i < len(faceOrder); i++ {
		name := string(faceOrder[i])
		out = append(out, moveTable[name], moveTable[name+"2"], moveTable[name+"'"])
	}

	return out
}

// ParseMove resolves a single token such as "R", "U2" or "F'".
func ParseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, ErrEmptyMove
	}
	// Accept the typographic apostrophe some tables are written with.
	tok = strings.ReplaceAll(tok, "’", "'")
	m, ok := moveTable[tok]
	if !ok {
		return Move{}, fmt.Errorf("cube: ParseMove(%q): %w", tok, ErrUnknownMove)
	}

	return m, nil
}

// ParseAlgorithm splits alg on whitespace and parses every token.
// An empty or blank alg yields an empty, non-nil slice.
func ParseAlgorithm(alg string) ([]Move, error) {
	fields := strings.Fields(alg)
	out := make([]Move, 0, len(fields))
	for i, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("cube: ParseAlgorithm: token %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// Scramble applies alg to the solved state.
func Scramble(alg string) (State, error) {
	return Solved().ApplyAlgorithm(alg)
}
