package notation

import (
	"strings"
	"unicode"
)

var punct = map[rune]kind{
	'(': lparen,
	')': rparen,
	'[': lbrack,
	']': rbrack,
	',': comma,
	':': colon,
	'/': slash,
}

// lex splits s into tokens. The typographic prime is folded into "'".
func lex(s string) []token {
	s = strings.ReplaceAll(s, "’", "'")
	var out []token
	glued := false
	start := -1
	flush := func(end int) {
		if start >= 0 {
			out = append(out, token{kind: word, text: s[start:end], pos: start, glued: glued})
			glued = true
			start = -1
		}
	}
	for i, r := range s {
		switch k, ok := punct[r]; {
		case ok:
			flush(i)
			out = append(out, token{kind: k, text: string(r), pos: i, glued: glued})
			glued = true
		case unicode.IsSpace(r):
			flush(i)
			glued = false
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(s))

	return append(out, token{kind: eof, pos: len(s)})
}
