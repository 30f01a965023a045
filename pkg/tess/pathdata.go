package tess

import (
	"fmt"
	"strconv"
)

// ParsePathData parses an SVG "d" attribute into raw commands.
// An empty or whitespace-only string yields no commands and no error.
// Grammar violations (unknown command letter, truncated argument list,
// leading numbers without a command) return an error wrapping ErrMalformedPath.
func ParsePathData(d string) ([]RawCommand, error) {
	tokens := tokenizePathData(d)
	if len(tokens) == 0 {
		return nil, nil
	}

	var result []RawCommand

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if len(tok) != 1 || rawKindLetter(tok[0]) == nil {
			return nil, fmt.Errorf("%w: expected command letter, got %q", ErrMalformedPath, tok)
		}

		kind := *rawKindLetter(tok[0])
		rel := tok[0] >= 'a' && tok[0] <= 'z'
		i++

		// 1.0: consume at least one argument pack, then keep consuming while
		// numbers follow (implicit command repetition).
		first := true
		for first || (i < len(tokens) && isNumberToken(tokens[i])) {
			want := argCount[kind]
			args := make([]float64, 0, want)
			for n := 0; n < want; n++ {
				if i >= len(tokens) || !isNumberToken(tokens[i]) {
					return nil, fmt.Errorf("%w: command %v wants %d numbers, got %d", ErrMalformedPath, kind, want, n)
				}

				v, err := strconv.ParseFloat(tokens[i], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: bad number %q: %v", ErrMalformedPath, tokens[i], err)
				}

				args = append(args, v)
				i++
			}

			result = append(result, RawCommand{Kind: kind, Rel: rel, Args: args})

			// 1.1: a repeated MoveTo pack is an implicit LineTo
			if kind == RawMoveTo {
				kind = RawLineTo
			}

			if kind == RawClose {
				break
			}

			first = false
		}
	}

	return result, nil
}

func rawKindLetter(c byte) *RawKind {
	upper := c
	if c >= 'a' && c <= 'z' {
		upper = c - 'a' + 'A'
	}

	kind, ok := rawKindEnum[upper]
	if !ok {
		return nil
	}

	return &kind
}

// tokenizePathData splits path data into command letters and number literals.
// Handles comma/space separation, sign-glued numbers ("1-2"), decimals
// ("1.5.5" is 1.5 and .5) and exponents.
func tokenizePathData(d string) []string {
	var tokens []string
	var cur []byte

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = nil
		}
	}

	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
			flush()
		case (c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') && c != 'e' && c != 'E':
			flush()
			tokens = append(tokens, string(c))
		case c == '-' || c == '+':
			// part of an exponent, otherwise starts a new number
			if len(cur) > 0 && (cur[len(cur)-1] == 'e' || cur[len(cur)-1] == 'E') {
				cur = append(cur, c)
			} else {
				flush()
				cur = append(cur, c)
			}
		case c == '.':
			// second dot starts a new number
			if hasDot(cur) {
				flush()
			}
			cur = append(cur, c)
		default:
			cur = append(cur, c)
		}
	}

	flush()

	return tokens
}

func hasDot(b []byte) bool {
	for _, c := range b {
		if c == '.' {
			return true
		}
		if c == 'e' || c == 'E' {
			return false
		}
	}

	return false
}

func isNumberToken(s string) bool {
	if s == "" {
		return false
	}

	_, err := strconv.ParseFloat(s, 64)

	return err == nil
}
