// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// If std is false, only the escapes \", \\, and \n are recognized.  If std is
// true, the full escape set of RFC 8259 is recognized, including \uXXXX with
// UTF-16 surrogate pairs. An unpaired surrogate decodes as the Unicode
// replacement rune. Unquote reports an error for an incomplete or unknown
// escape sequence.
func Unquote(src mem.RO, std bool) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\':
			dec = append(dec, b)
		case 'n':
			dec = append(dec, '\n')
		default:
			if !std {
				return nil, fmt.Errorf("invalid %q after escape", b)
			}
			switch b {
			case '/':
				dec = append(dec, '/')
			case 'b':
				dec = append(dec, '\b')
			case 'f':
				dec = append(dec, '\f')
			case 'r':
				dec = append(dec, '\r')
			case 't':
				dec = append(dec, '\t')
			case 'u':
				r, n, err := decodeUnicode(src)
				if err != nil {
					return nil, err
				}
				putRune(r)
				src = src.SliceFrom(n)
			default:
				return nil, fmt.Errorf("invalid %q after escape", b)
			}
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeUnicode decodes the hex digits of a \u escape at the front of src
// (after the "\u"), combining a following \u escape if the first is a high
// surrogate. It returns the rune and the number of bytes of src consumed.
func decodeUnicode(src mem.RO) (rune, int, error) {
	if src.Len() < 4 {
		return 0, 0, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return 0, 0, err
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}

	// Look for a low surrogate to pair with this one.
	rest := src.SliceFrom(4)
	if rest.Len() >= 6 && rest.At(0) == '\\' && rest.At(1) == 'u' {
		if w, err := parseHex(rest.Slice(2, 6)); err == nil {
			if p := utf16.DecodeRune(r, rune(w)); p != utf8.RuneError {
				return p, 10, nil
			}
		}
	}
	return utf8.RuneError, 4, nil
}

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
