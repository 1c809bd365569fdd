// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"testing"

	"github.com/creachadair/jvalue"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		set   jvalue.EscapeSet
		want  string
	}{
		{"", jvalue.RestrictedEscapes, `""`},
		{" ", jvalue.RestrictedEscapes, `" "`},
		{"a\t\nb", jvalue.RestrictedEscapes, "\"a\t\\nb\""},
		{`a "b c\" d"`, jvalue.RestrictedEscapes, `"a \"b c\\\" d\""`},
		{"\u2028", jvalue.RestrictedEscapes, "\"\u2028\""},

		{"a\t\nb", jvalue.StandardEscapes, `"a\t\nb"`},
		{"\x00\x01\x02", jvalue.StandardEscapes, `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, jvalue.StandardEscapes, `"a \"b c\\\" d\""`},
		{`\ufffd`, jvalue.StandardEscapes, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", jvalue.StandardEscapes, `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", jvalue.StandardEscapes, `"This is the end\u000b"`},
		{"<\x1e>", jvalue.StandardEscapes, `"<\u001e>"`},
	}
	for _, tc := range tests {
		got := jvalue.Quote(tc.input, tc.set)
		if got != tc.want {
			t.Errorf("Input: %#q (%v)\nGot:  %#q\nWant: %#q", tc.input, tc.set, got, tc.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	const (
		rx  = jvalue.RestrictedEscapes
		std = jvalue.StandardEscapes
	)
	tests := []struct {
		input string
		set   jvalue.EscapeSet
		want  string
		fail  bool
	}{
		{``, rx, ``, true},                            // missing quotes
		{`"missing quote`, rx, ``, true},              // missing quotes
		{`missing quote"`, rx, ``, true},              // missing quotes
		{`""`, rx, ``, false},                         // ok
		{`"ok go"`, rx, "ok go", false},               // ok
		{`"abc\ndef"`, rx, "abc\ndef", false},         // newline escape
		{`"a\"b"`, rx, `a"b`, false},                  // ok
		{`"a\\b\\cd"`, rx, `a\b\cd`, false},           // ok
		{`"\tabc"`, rx, ``, true},                     // not in the restricted set
		{`"\tabc\n"`, std, "\tabc\n", false},          // C escapes
		{`"\b\f\n\r\t\/"`, std, "\b\f\n\r\t/", false}, // C escapes
		{`"a \u0026 b"`, std, "a & b", false},         // short Unicode escape
		{`"\u"`, std, ``, true},                       // incomplete Unicode escape
		{`"\u00"`, std, ``, true},                     // incomplete Unicode escape
		{`"\u00x9"`, std, ``, true},                   // invalid Unicode escape
		{`"\ud83d\ude00"`, std, "\U0001f600", false},  // surrogate pair
		{`"\ud83dA"`, std, "\ufffdA", false},          // unpaired surrogate
		{`"\q"`, std, ``, true},                       // unknown escape
		{`"\"`, std, ``, true},                        // incomplete escape
	}

	for _, tc := range tests {
		got, err := jvalue.Unquote(tc.input, tc.set)
		if err != nil {
			if !tc.fail {
				t.Errorf("Unquote(%#q, %v): got %v, want no error", tc.input, tc.set, err)
			} else {
				t.Logf("Unquote(%#q, %v): got expected error: %v", tc.input, tc.set, err)
			}
		} else if tc.fail {
			t.Errorf("Unquote(%#q, %v): got nil, want error", tc.input, tc.set)
		}
		if got != tc.want {
			t.Errorf("Unquote(%#q, %v): got %#q, want %#q", tc.input, tc.set, got, tc.want)
		}
	}
}
