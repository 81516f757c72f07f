package notation

import (
	"fmt"
	"strconv"
	"strings"
)

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != eof {
		p.i++
	}

	return t
}

// Parse expands s into its flat list of turns.
func Parse(s string) ([]string, error) {
	p := &parser{toks: lex(s)}
	out, err := p.seq()
	if err != nil {
		return nil, fmt.Errorf("notation: Parse: %w", err)
	}
	switch t := p.peek(); t.kind {
	case eof:
		return out, nil
	case rparen, rbrack:
		return nil, fmt.Errorf("notation: Parse: stray %q at %d: %w", t.text, t.pos, ErrUnbalanced)
	default:
		return nil, fmt.Errorf("notation: Parse: %q at %d: %w", t.text, t.pos, ErrUnexpectedToken)
	}
}

// Expand returns the turns of s joined by single spaces.
func Expand(s string) (string, error) {
	turns, err := Parse(s)
	if err != nil {
		return "", err
	}

	return strings.Join(turns, " "), nil
}

// Normalize expands s and simplifies the result.
func Normalize(s string) (string, error) {
	turns, err := Parse(s)
	if err != nil {
		return "", err
	}

	return strings.Join(Simplify(turns), " "), nil
}

// seq parses items until a token that cannot start one.
func (p *parser) seq() ([]string, error) {
	var out []string
	for {
		t := p.peek()
		switch t.kind {
		case word:
			p.next()
			out = append(out, t.text)
		case lparen:
			p.next()
			inner, err := p.seq()
			if err != nil {
				return nil, err
			}
			if err = p.close(t, rparen); err != nil {
				return nil, err
			}
			if inner, err = p.suffix(inner); err != nil {
				return nil, err
			}
			out = append(out, inner...)
		case lbrack:
			p.next()
			inner, err := p.body()
			if err != nil {
				return nil, err
			}
			if err = p.close(t, rbrack); err != nil {
				return nil, err
			}
			out = append(out, inner...)
		default:
			return out, nil
		}
		if len(out) > MaxTurns {
			return nil, fmt.Errorf("at %d: %w", t.pos, ErrTooLong)
		}
	}
}

// body parses the inside of a bracket; operators associate to the right.
func (p *parser) body() ([]string, error) {
	left, err := p.seq()
	if err != nil {
		return nil, err
	}
	op := p.peek()
	if op.kind != comma && op.kind != colon && op.kind != slash {
		return left, nil
	}
	p.next()
	right, err := p.body()
	if err != nil {
		return nil, err
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, fmt.Errorf("%q at %d: %w", op.text, op.pos, ErrEmptyOperand)
	}

	// every operator emits at most 3*|left| + 2*|right| turns
	if 3*len(left)+2*len(right) > MaxTurns {
		return nil, fmt.Errorf("%q at %d: %w", op.text, op.pos, ErrTooLong)
	}

	return combine(op.kind, left, right), nil
}

// close consumes the closer matching open.
func (p *parser) close(open token, want kind) error {
	t := p.next()
	switch {
	case t.kind == want:
		return nil
	case t.kind == eof || t.kind == rparen || t.kind == rbrack:
		return fmt.Errorf("%q at %d not closed: %w", open.text, open.pos, ErrUnbalanced)
	default:
		return fmt.Errorf("%q at %d: %w", t.text, t.pos, ErrUnexpectedToken)
	}
}

// suffix applies a repeat count and/or prime glued to a closing ")".
// A glued word starting with a letter is not a suffix and is left for seq.
func (p *parser) suffix(inner []string) ([]string, error) {
	t := p.peek()
	if t.kind != word || !t.glued {
		return inner, nil
	}
	digits, prime := strings.CutSuffix(t.text, "'")

	// 1) Decide whether the word is a suffix at all.
	n := 1
	switch {
	case digits == "" && !prime:
		return inner, nil
	case digits == "":
		// bare prime: n stays 1
	case digits[0] < '0' || digits[0] > '9':
		return inner, nil
	default:
		// 2) A count must be a plain decimal no larger than MaxRepeat.
		v, err := strconv.Atoi(digits)
		if err != nil || v < 0 || v > MaxRepeat {
			return nil, fmt.Errorf("repeat %q at %d (max %d): %w", t.text, t.pos, MaxRepeat, ErrUnexpectedToken)
		}
		n = v
	}
	// 3) Bound the expansion before allocating it.
	if n*len(inner) > MaxTurns {
		return nil, fmt.Errorf("repeat %q at %d: %w", t.text, t.pos, ErrTooLong)
	}
	p.next()

	if prime {
		inner = Invert(inner)
	}
	out := make([]string, 0, n*len(inner))
	for range n {
		out = append(out, inner...)
	}

	return out, nil
}

func combine(op kind, a, b []string) []string {
	ai, bi := Invert(a), Invert(b)
	out := make([]string, 0, 2*len(a)+2*len(b)+len(a))
	switch op {
	case comma:
		out = append(append(append(append(out, a...), b...), ai...), bi...)
	case colon:
		out = append(append(append(out, a...), b...), ai...)
	case slash:
		out = append(append(append(append(append(out, a...), b...), a...), a...), bi...)
		out = append(out, a...)
	}

	return out
}
