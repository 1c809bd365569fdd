// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// skipSpace consumes a maximal run of JSON whitespace from the front of c.
func skipSpace(c cursor) cursor {
	i := 0
	for i < c.Len() && isSpace(c.src.At(i)) {
		i++
	}
	return c.Advance(i)
}

// scanStringBody consumes the body of a string whose opening quote has
// already been consumed. It returns a cursor positioned at the closing quote,
// and a view of the body with escapes intact.
//
// Any failure from scanStringBody is fatal, as its caller has committed.
func scanStringBody(c cursor, std bool) (cursor, mem.RO, *ParseError) {
	i := 0
	for i < c.Len() {
		b := c.src.At(i)
		switch {
		case b == '"':
			return c.Advance(i), c.Slice(i), nil
		case b == '\\':
			n, err := scanEscape(c.Advance(i), std)
			if err != nil {
				return c, mem.RO{}, err
			}
			i += n
		case b < ' ' && std:
			return c, mem.RO{}, fail(c.Advance(i), ControlChar, "got %q", rune(b))
		default:
			i++
		}
	}
	return c, mem.RO{}, fail(c.Advance(i), UnterminatedString, "")
}

// scanEscape checks the escape sequence beginning at the backslash at c, and
// returns its length in bytes.
func scanEscape(c cursor, std bool) (int, *ParseError) {
	if c.Len() < 2 {
		return 0, fail(c.Advance(c.Len()), UnterminatedString, "")
	}
	switch b := c.src.At(1); b {
	case '"', '\\', 'n':
		return 2, nil
	case '/', 'b', 'f', 'r', 't':
		if std {
			return 2, nil
		}
	case 'u':
		if std {
			for j := 2; j < 6; j++ {
				if j >= c.Len() || !escape.IsHexDigit(c.src.At(j)) {
					return 0, fail(c.Advance(min(j, c.Len())), BadEscape, "invalid Unicode escape")
				}
			}
			return 6, nil
		}
	}
	r, _ := mem.DecodeRune(c.src.SliceFrom(1))
	return 0, fail(c, BadEscape, "invalid %q after escape", r)
}

// scanNumber consumes the longest prefix of c that is a valid JSON number,
// and returns its value. If c does not begin with a number, scanNumber fails
// without committing. A prefix whose value is out of range for a float64 is
// a fatal error.
func scanNumber(c cursor) (cursor, float64, *ParseError) {
	at := func(i int) byte {
		if i < c.Len() {
			return c.src.At(i)
		}
		return 0
	}
	digits := func(i int) int {
		for isDigit(at(i)) {
			i++
		}
		return i
	}

	i := 0
	if at(i) == '-' {
		i++
	}

	// Integer part: a single zero, or a non-zero digit and more digits.
	// Extra leading zeroes are not part of the match.
	if d := at(i); d == '0' {
		i++
	} else if '1' <= d && d <= '9' {
		i = digits(i + 1)
	} else {
		return c, 0, backtrack(c, InvalidNumber)
	}

	// Fraction: a decimal point must be followed by at least one digit.
	if at(i) == '.' && isDigit(at(i+1)) {
		i = digits(i + 2)
	}

	// Exponent: an optional sign must be followed by at least one digit.
	if e := at(i); e == 'e' || e == 'E' {
		j := i + 1
		if s := at(j); s == '+' || s == '-' {
			j++
		}
		if isDigit(at(j)) {
			i = digits(j + 1)
		}
	}

	text := c.Slice(i)
	v, err := mem.ParseFloat(text, 64)
	if err != nil {
		return c, 0, fail(c, InvalidNumber, "%q is out of range", text.StringCopy())
	}
	return c.Advance(i), v, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t'
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
