// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"
	"slices"
	"strings"

	"go4.org/mem"
)

// A Cause identifies the terminal reason a parse failed.  Cause values
// satisfy the error interface, so that the cause of a [*ParseError] can be
// checked with errors.Is:
//
//	if errors.Is(err, jvalue.TrailingInput) { ... }
type Cause byte

// Constants defining the valid Cause values.
const (
	NoMatch            Cause = iota + 1 // no grammar alternative applies
	UnterminatedString                  // input ended inside a string
	BadEscape                           // unknown or incomplete escape sequence
	ControlChar                         // unescaped control character in a string
	InvalidNumber                       // malformed or out-of-range number
	ExpectedValue                       // a value is required but none was found
	ExpectedColon                       // an object key is not followed by ":"
	ExpectedKey                         // an object member does not begin with a string
	ExpectedDelimiter                   // a value is not followed by "," or a closing bracket
	TrailingComma                       // a comma precedes a closing bracket
	TrailingInput                       // input remains after the top-level value
	InvalidRoot                         // the document is not an object, array, or null
	NestingTooDeep                      // arrays and objects are nested too deeply
)

var causeStr = [...]string{
	0:                  "unknown error",
	NoMatch:            "no value matched",
	UnterminatedString: "unterminated string",
	BadEscape:          "invalid escape sequence",
	ControlChar:        "unescaped control character",
	InvalidNumber:      "invalid number",
	ExpectedValue:      "expected value",
	ExpectedColon:      `expected ":"`,
	ExpectedKey:        "expected string key",
	ExpectedDelimiter:  "expected delimiter",
	TrailingComma:      "trailing comma",
	TrailingInput:      "unexpected input after value",
	InvalidRoot:        "document must be an object, array, or null",
	NestingTooDeep:     "nesting too deep",
}

// Error satisfies the error interface.
func (c Cause) Error() string {
	if int(c) >= len(causeStr) {
		return causeStr[0]
	}
	return causeStr[c]
}

// Context labels attached to errors by the grammar rules.
const (
	labelString = "string"
	labelArray  = "array"
	labelMap    = "map"
)

// maxErrorLabels is the most context labels rendered by ParseError.Error.
const maxErrorLabels = 8

// ParseError is the concrete type of errors reported by [Parse].
type ParseError struct {
	Offset   int     // byte offset in the input where the failure occurred
	Location LineCol // line and column corresponding to Offset
	Cause    Cause   // the terminal cause of the failure

	// Context labels the grammar rules that were active when the error
	// occurred, innermost first. It is empty unless Fatal is true.
	Context []string

	// Fatal reports whether the failure occurred after a grammar rule had
	// committed to its production. A non-fatal failure means no rule applied.
	Fatal bool

	// Detail, if non-empty, gives additional information about the failure,
	// such as the unexpected input found.
	Detail string
}

// Error satisfies the error interface. The context labels, if any, are
// rendered outermost first as a path to the failure. Long paths are elided.
func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "at %s (offset %d): ", e.Location, e.Offset)
	if n := len(e.Context); n > maxErrorLabels {
		const keep = maxErrorLabels / 2
		outer := &ParseError{Context: e.Context[n-keep:]}
		inner := &ParseError{Context: e.Context[:keep]}
		fmt.Fprintf(&sb, "%s > ... > %s: ", outer.Path(), inner.Path())
	} else if n != 0 {
		sb.WriteString(e.Path())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Cause.Error())
	if e.Detail != "" {
		sb.WriteString(", ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Unwrap supports error wrapping. It returns the cause of e.
func (e *ParseError) Unwrap() error { return e.Cause }

// Path returns the context labels of e outermost first, joined by " > ".
func (e *ParseError) Path() string {
	labels := slices.Clone(e.Context)
	slices.Reverse(labels)
	return strings.Join(labels, " > ")
}

// backtrack constructs a recoverable failure at c.
func backtrack(c cursor, cause Cause) *ParseError {
	return &ParseError{Offset: c.Offset(), Cause: cause}
}

// fail constructs a fatal failure at c.
func fail(c cursor, cause Cause, detail string, args ...any) *ParseError {
	e := &ParseError{Offset: c.Offset(), Cause: cause, Fatal: true}
	if detail != "" {
		e.Detail = fmt.Sprintf(detail, args...)
	}
	return e
}

// isFatal reports whether err is a committed failure.
func isFatal(err *ParseError) bool { return err != nil && err.Fatal }

// withContext attaches label to err if it is fatal, and returns err.
func withContext(err *ParseError, label string) *ParseError {
	if isFatal(err) {
		err.Context = append(err.Context, label)
	}
	return err
}

// describe renders the next byte of input at c for use in error details.
func describe(c cursor) string {
	if c.Empty() {
		return "got end of input"
	}
	r, _ := mem.DecodeRune(c.src)
	return fmt.Sprintf("got %q", r)
}
