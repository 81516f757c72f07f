package notation

import "errors"

const (
	// MaxRepeat is the largest count accepted after a ")".
	MaxRepeat = 99

	// MaxTurns bounds the number of turns any group or operator may
	// expand to.
	MaxTurns = 1 << 16
)

var (
	// ErrUnbalanced indicates a missing or mismatched bracket.
	ErrUnbalanced = errors.New("notation: unbalanced brackets")

	// ErrEmptyOperand indicates an operator with an empty side.
	ErrEmptyOperand = errors.New("notation: empty operand")

	// ErrUnexpectedToken indicates a token in a position the grammar does
	// not allow.
	ErrUnexpectedToken = errors.New("notation: unexpected token")

	// ErrTooLong indicates an expansion above MaxTurns turns.
	ErrTooLong = errors.New("notation: expansion too long")
)

type kind uint8

const (
	word kind = iota
	lparen
	rparen
	lbrack
	rbrack
	comma
	colon
	slash
	eof
)

// token is one lexeme; glued records that no whitespace preceded it.
type token struct {
	kind  kind
	text  string
	pos   int
	glued bool
}
