// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The enclosing quotation marks are not added.
//
// If std is false, only the characters '"', '\\', and '\n' are escaped, and
// all other characters are copied verbatim, so that the result can be read
// back using the restricted escape set.  If std is true, control characters
// and the Unicode line and paragraph separators are escaped as well.
func Quote(src mem.RO, std bool) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r == '\\' || r == '"' {
				putByte('\\', byte(r))
			} else if r == '\n' {
				putByte('\\', 'n')
			} else if r < ' ' && std {
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else {
				putByte(byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch {
		case std && r == utf8.RuneError: // replacement rune, or invalid UTF-8
			buf = append(buf, `\ufffd`...)
		case std && r == '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case std && r == '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			buf = mem.Append(buf, src.SliceTo(n))
		}
		src = src.SliceFrom(n)
	}
	return buf
}
