package cube

import "errors"

// Piece counts and orientation moduli.
const (
	NumCorners = 8
	NumEdges   = 12

	CornerMod = 3
	EdgeMod   = 2
)

// Corner slots.
const (
	UBL = iota
	UBR
	UFR
	UFL
	DFL
	DFR
	DBR
	DBL
)

// Edge slots.
const (
	BL = iota
	BR
	FR
	FL
	UB
	UR
	UF
	UL
	DF
	DR
	DB
	DL
)

// CornerNames lists corner slot names in index order. The first letter of
// each name is the sticker that carries orientation 0.
var CornerNames = [NumCorners]string{"UBL", "UBR", "UFR", "UFL", "DFL", "DFR", "DBR", "DBL"}

// EdgeNames lists edge slot names in index order.
var EdgeNames = [NumEdges]string{"BL", "BR", "FR", "FL", "UB", "UR", "UF", "UL", "DF", "DR", "DB", "DL"}

// Sentinel errors for move parsing.
var (
	// ErrEmptyMove indicates an empty move token.
	ErrEmptyMove = errors.New("cube: empty move")

	// ErrUnknownMove indicates a token that is not a supported face turn.
	ErrUnknownMove = errors.New("cube: unknown move")
)

// State is the permutation/orientation tuple of a cube.
//
// The zero value is NOT the solved state; use Solved.
type State struct {
	// CP[i] is the corner piece occupying corner slot i.
	CP [NumCorners]uint8
	// CO[i] is the orientation (mod 3) of the corner in slot i.
	CO [NumCorners]uint8
	// EP[i] is the edge piece occupying edge slot i.
	EP [NumEdges]uint8
	// EO[i] is the orientation (mod 2) of the edge in slot i.
	EO [NumEdges]uint8
}

// Move is a named face turn. Its Transform is a State-shaped value
// applied with State.Apply.
type Move struct {
	Name      string
	Transform State
}

// String returns the move token.
func (m Move) String() string { return m.Name }
