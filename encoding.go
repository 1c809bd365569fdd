// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"strings"

	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added. The result uses only the escapes of the
// given set.
func Quote(src string, set EscapeSet) string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.Write(escape.Quote(mem.S(src), set == StandardEscapes))
	sb.WriteByte('"')
	return sb.String()
}

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences of the given set are replaced with their unescaped
// equivalents. Unquote reports an error for an incomplete escape sequence, or
// one not in the set.
func Unquote(src string, set EscapeSet) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1:len(src)-1]), set == StandardEscapes)
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
