// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// DefaultMaxDepth is the maximum nesting depth of arrays and objects
// permitted when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

// An EscapeSet selects which escape sequences are permitted in strings.
type EscapeSet byte

const (
	// RestrictedEscapes permits only the escapes \", \\, and \n. Any other
	// character, including control characters, may appear literally in a
	// string. This is the default.
	RestrictedEscapes EscapeSet = iota

	// StandardEscapes permits the full escape set of RFC 8259, including
	// \uXXXX, and rejects unescaped control characters.
	StandardEscapes
)

func (e EscapeSet) String() string {
	switch e {
	case RestrictedEscapes:
		return "restricted"
	case StandardEscapes:
		return "standard"
	default:
		return "unknown"
	}
}

// Options control the behavior of a parse. A zero Options is ready for use
// and provides the same behavior as the Parse function.
type Options struct {
	// MaxDepth is the maximum nesting depth of arrays and objects.
	// If zero, DefaultMaxDepth is used. If negative, depth is not limited.
	MaxDepth int

	// Escapes selects which string escapes are accepted.
	Escapes EscapeSet
}

// Parse parses text as a JSON document using default options.
// See [Options.Parse].
func Parse(text string) (Value, error) { return Options{}.Parse(text) }

// MustParse parses text as with [Parse], but panics if parsing fails.
// It is intended for use in tests and for initializing variables.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses text as a JSON document. The document must consist of a
// single object, array, or null value, optionally surrounded by whitespace.
// In case of error, the returned error has concrete type [*ParseError].
//
// Parse does not retain text, and is safe for concurrent use.
func (o Options) Parse(text string) (Value, error) {
	p := parser{std: o.Escapes == StandardEscapes, maxDepth: o.MaxDepth}
	if p.maxDepth == 0 {
		p.maxDepth = DefaultMaxDepth
	}
	v, err := p.parseRoot(newCursor(text))
	if err != nil {
		err.Location = locate(text, err.Offset)
		return nil, err
	}
	return v, nil
}

// A parser holds the settings for a parse. It is not modified during
// parsing; all other state is carried by cursors and call arguments.
type parser struct {
	std      bool // accept standard escapes
	maxDepth int  // maximum nesting depth; < 0 means unlimited
}

// A rule is a grammar rule that consumes a value from the front of c.
// The depth is the number of arrays and objects enclosing c.
//
// On success, a rule returns the remaining input and the value.  On failure,
// it returns c unchanged and an error; the error is fatal if the rule had
// committed to its production before it failed.
type rule func(c cursor, depth int) (cursor, Value, *ParseError)

// alt tries each of rules in order at c, returning the result of the first
// to succeed. A fatal error from any rule is returned without trying the
// rules that follow it. If no rule applies, alt fails without committing.
func alt(c cursor, depth int, rules ...rule) (cursor, Value, *ParseError) {
	for _, r := range rules {
		rest, v, err := r(c, depth)
		if err == nil || err.Fatal {
			return rest, v, err
		}
	}
	return c, nil, backtrack(c, NoMatch)
}

// parseRoot parses a complete document.
func (p parser) parseRoot(c cursor) (Value, *ParseError) {
	c = skipSpace(c)
	rest, v, err := alt(c, 0, p.objectValue, p.arrayValue, nullValue)
	if isFatal(err) {
		return nil, err
	} else if err != nil {
		err = backtrack(c, InvalidRoot)
		err.Detail = describe(c)
		return nil, err
	}
	if rest = skipSpace(rest); !rest.Empty() {
		return nil, fail(rest, TrailingInput, "%s", describe(rest))
	}
	return v, nil
}

// parseValue parses a single value of any type, after skipping whitespace.
func (p parser) parseValue(c cursor, depth int) (cursor, Value, *ParseError) {
	c = skipSpace(c)
	return alt(c, depth, p.objectValue, p.arrayValue, p.stringValue, numberValue, boolValue, nullValue)
}

func (p parser) objectValue(c cursor, depth int) (cursor, Value, *ParseError) {
	rest, obj, err := p.parseObject(c, depth)
	if err != nil {
		return c, nil, err
	}
	return rest, obj, nil
}

func (p parser) arrayValue(c cursor, depth int) (cursor, Value, *ParseError) {
	rest, arr, err := p.parseArray(c, depth)
	if err != nil {
		return c, nil, err
	}
	return rest, arr, nil
}

func (p parser) stringValue(c cursor, _ int) (cursor, Value, *ParseError) {
	rest, s, err := p.parseString(c)
	if err != nil {
		return c, nil, err
	}
	return rest, String(s), nil
}

func numberValue(c cursor, _ int) (cursor, Value, *ParseError) {
	rest, f, err := scanNumber(c)
	if err != nil {
		return c, nil, err
	}
	return rest, Number(f), nil
}

func boolValue(c cursor, _ int) (cursor, Value, *ParseError) {
	rest, ok, err := parseBool(c)
	if err != nil {
		return c, nil, err
	}
	return rest, Bool(ok), nil
}

func nullValue(c cursor, _ int) (cursor, Value, *ParseError) {
	rest, err := parseNull(c)
	if err != nil {
		return c, nil, err
	}
	return rest, Null{}, nil
}

// parseNull matches the keyword null.
func parseNull(c cursor) (cursor, *ParseError) {
	if c.HasPrefix("null") {
		return c.Advance(4), nil
	}
	return c, backtrack(c, NoMatch)
}

// parseBool matches the keywords true and false.
func parseBool(c cursor) (cursor, bool, *ParseError) {
	if c.HasPrefix("true") {
		return c.Advance(4), true, nil
	} else if c.HasPrefix("false") {
		return c.Advance(5), false, nil
	}
	return c, false, backtrack(c, NoMatch)
}

// parseString matches a quoted string and returns its unescaped contents.
// Once the opening quote is matched, any failure is fatal.
func (p parser) parseString(c cursor) (cursor, string, *ParseError) {
	if !c.Is('"') {
		return c, "", backtrack(c, NoMatch)
	}
	end, body, err := scanStringBody(c.Advance(1), p.std)
	if err != nil {
		return c, "", withContext(err, labelString)
	}
	rest := end.Advance(1) // the closing quote

	if mem.IndexByte(body, '\\') < 0 {
		return rest, body.StringCopy(), nil
	}
	dec, uerr := escape.Unquote(body, p.std)
	if uerr != nil {
		return c, "", withContext(fail(c, BadEscape, "%v", uerr), labelString)
	}
	return rest, string(dec), nil
}

// checkDepth reports a fatal error at c if a composite value beginning at c
// would exceed the maximum nesting depth.
func (p parser) checkDepth(c cursor, depth int) *ParseError {
	if p.maxDepth >= 0 && depth >= p.maxDepth {
		return fail(c, NestingTooDeep, "limit is %d", p.maxDepth)
	}
	return nil
}

// parseArray matches a bracketed, comma-separated sequence of values.
// Once the open bracket is matched, any failure is fatal.
func (p parser) parseArray(c cursor, depth int) (cursor, Array, *ParseError) {
	if !c.Is('[') {
		return c, nil, backtrack(c, NoMatch)
	}
	if err := p.checkDepth(c, depth); err != nil {
		return c, nil, withContext(err, labelArray)
	}
	rest, arr, err := p.parseElements(c.Advance(1), depth+1)
	if err != nil {
		return c, nil, withContext(err, labelArray)
	}
	return rest, arr, nil
}

// parseElements parses the elements of an array up to and including the
// closing bracket. All its failures are fatal.
func (p parser) parseElements(c cursor, depth int) (cursor, Array, *ParseError) {
	arr := Array{}
	if c = skipSpace(c); c.Is(']') {
		return c.Advance(1), arr, nil
	}
	for {
		rest, v, err := p.parseValue(c, depth)
		if isFatal(err) {
			return c, nil, err
		} else if err != nil {
			at := skipSpace(c)
			if len(arr) != 0 && at.Is(']') {
				return c, nil, fail(at, TrailingComma, "")
			}
			return c, nil, fail(at, ExpectedValue, "%s", describe(at))
		}
		arr = append(arr, v)

		c = skipSpace(rest)
		switch {
		case c.Is(','):
			c = c.Advance(1)
		case c.Is(']'):
			return c.Advance(1), arr, nil
		default:
			return c, nil, fail(c, ExpectedDelimiter, `want "," or "]", %s`, describe(c))
		}
	}
}

// parseObject matches a braced, comma-separated sequence of key:value pairs.
// Once the open brace is matched, any failure is fatal.
func (p parser) parseObject(c cursor, depth int) (cursor, Object, *ParseError) {
	if !c.Is('{') {
		return c, nil, backtrack(c, NoMatch)
	}
	if err := p.checkDepth(c, depth); err != nil {
		return c, nil, withContext(err, labelMap)
	}
	rest, obj, err := p.parseMembers(c.Advance(1), depth+1)
	if err != nil {
		return c, nil, withContext(err, labelMap)
	}
	return rest, obj, nil
}

// parseMembers parses the members of an object up to and including the
// closing brace. All its failures are fatal. If a key occurs more than once,
// the last occurrence wins.
func (p parser) parseMembers(c cursor, depth int) (cursor, Object, *ParseError) {
	obj := make(Object)
	if c = skipSpace(c); c.Is('}') {
		return c.Advance(1), obj, nil
	}
	for first := true; ; first = false {
		c = skipSpace(c)
		rest, key, err := p.parseString(c)
		if isFatal(err) {
			return c, nil, err
		} else if err != nil {
			if !first && c.Is('}') {
				return c, nil, fail(c, TrailingComma, "")
			}
			return c, nil, fail(c, ExpectedKey, "%s", describe(c))
		}

		if c = skipSpace(rest); !c.Is(':') {
			return c, nil, fail(c, ExpectedColon, "%s", describe(c))
		}
		c = c.Advance(1)

		rest, v, err := p.parseValue(c, depth)
		if isFatal(err) {
			return c, nil, err
		} else if err != nil {
			at := skipSpace(c)
			return c, nil, fail(at, ExpectedValue, "%s", describe(at))
		}
		obj[key] = v

		c = skipSpace(rest)
		switch {
		case c.Is(','):
			c = c.Advance(1)
		case c.Is('}'):
			return c.Advance(1), obj, nil
		default:
			return c, nil, fail(c, ExpectedDelimiter, `want "," or "}", %s`, describe(c))
		}
	}
}
