package notation

import (
	"strconv"
	"strings"
)

// split reads a turn word as base letters plus a quarter-turn amount in
// [0,4). A trailing prime negates the amount; a missing count means 1.
func split(w string) (string, int) {
	body, prime := strings.CutSuffix(w, "'")
	end := len(body)
	for end > 0 && body[end-1] >= '0' && body[end-1] <= '9' {
		end--
	}
	base := body[:end]
	n := 1
	if end < len(body) {
		v, err := strconv.Atoi(body[end:])
		if err != nil {
			return w, 1
		}
		n = v
	}
	if prime {
		n = -n
	}

	return base, ((n % 4) + 4) % 4
}

func render(base string, n int) string {
	switch n {
	case 1:
		return base
	case 2:
		return base + "2"
	case 3:
		return base + "'"
	}

	return ""
}

// Invert returns the inverse turn list: reversed, each turn inverted.
// Turns with a zero amount ("R4") disappear.
func Invert(turns []string) []string {
	out := make([]string, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		base, n := split(turns[i])
		if w := render(base, (4-n)%4); w != "" {
			out = append(out, w)
		}
	}

	return out
}

// Simplify merges adjacent turns of the same base and cancels those that
// add up to nothing, cascading through the result.
func Simplify(turns []string) []string {
	type turn struct {
		base string
		n    int
	}
	stack := make([]turn, 0, len(turns))
	for _, w := range turns {
		base, n := split(w)
		if top := len(stack) - 1; top >= 0 && stack[top].base == base {
			stack[top].n = (stack[top].n + n) % 4
			if stack[top].n == 0 {
				stack = stack[:top]
			}
			continue
		}
		if n != 0 {
			stack = append(stack, turn{base, n})
		}
	}

	out := make([]string, len(stack))
	for i, t := range stack {
		out[i] = render(t.base, t.n)
	}

	return out
}
