// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a recursive-descent parser that converts JSON
// text into a tree of values.
//
// # Parsing
//
// Call Parse to parse a document. A document is a single object, array, or
// null value, optionally surrounded by whitespace:
//
//	v, err := jvalue.Parse(`{"a": 1, "b": [true, false, null]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The concrete type of a value is one of Null, Bool, Number, String, Array,
// or Object. Numbers are represented as float64. If an object has more than
// one member with the same key, the last one wins. Use a type switch or the
// Kind method to inspect a value, and Path to look up nested values:
//
//	name, err := jvalue.Path(v, "users", 0, "name")
//
// To configure the parser, populate an Options value and call its Parse
// method. By default strings may contain only the escapes \", \\, and \n;
// set Options.Escapes to StandardEscapes to accept the full escape set.
// Arrays and objects may be nested up to DefaultMaxDepth levels, unless
// Options.MaxDepth says otherwise.
//
// # Errors
//
// When parsing fails, the error has concrete type *ParseError. A ParseError
// reports the offset and line:column of the failure, its Cause, and the
// grammar rules ("string", "array", "map") that were active when it
// occurred, innermost first:
//
//	at 1:5 (offset 5): map: expected value, got '}'
//
// Each Cause is itself an error, so errors.Is may be used to check for a
// specific failure:
//
//	if errors.Is(err, jvalue.TrailingInput) { ... }
//
// Once the parser has seen the opening quote of a string or the opening
// bracket of an array or object, it is committed to that production, and any
// subsequent error is reported as an error in that production.
package jvalue
