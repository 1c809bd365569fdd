// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// A Value is a JSON value. The concrete type of a Value is one of Null, Bool,
// Number, String, Array, or Object. Values are not modified once constructed.
type Value interface {
	// Kind reports the kind of the value.
	Kind() Kind

	// JSON returns the compact JSON encoding of the value.
	// Object members are rendered in lexicographic order by key.
	JSON() string

	isValue()
}

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "boolean",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON Boolean value.
type Bool bool

// Number is a JSON number.
type Number float64

// String is a JSON string, with escapes removed.
type String string

// Array is an ordered sequence of JSON values.
type Array []Value

// Object is a collection of JSON values indexed by key.
type Object map[string]Value

func (Null) Kind() Kind   { return NullKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Number) Kind() Kind { return NumberKind }
func (String) Kind() Kind { return StringKind }
func (Array) Kind() Kind  { return ArrayKind }
func (Object) Kind() Kind { return ObjectKind }

func (v Null) JSON() string   { return "null" }
func (v Bool) JSON() string   { return strconv.FormatBool(bool(v)) }
func (v Number) JSON() string { return string(appendJSON(nil, v)) }
func (v String) JSON() string { return string(appendJSON(nil, v)) }
func (v Array) JSON() string  { return string(appendJSON(nil, v)) }
func (v Object) JSON() string { return string(appendJSON(nil, v)) }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

func appendJSON(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Null:
		return append(buf, "null"...)
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Number:
		return appendNumber(buf, float64(t))
	case String:
		buf = append(buf, '"')
		buf = append(buf, escape.Quote(mem.S(string(t)), false)...)
		return append(buf, '"')
	case Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, elt)
		}
		return append(buf, ']')
	case Object:
		buf = append(buf, '{')
		for i, key := range t.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, String(key))
			buf = append(buf, ':')
			buf = appendJSON(buf, t[key])
		}
		return append(buf, '}')
	default:
		panic("invalid value")
	}
}

// appendNumber appends the encoding of f to buf. Exponent notation is used
// only for very large and very small magnitudes.
func appendNumber(buf []byte, f float64) []byte {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.AppendFloat(buf, f, 'f', -1, 64)
	}
	buf = strconv.AppendFloat(buf, f, 'e', -1, 64)

	// Trim a leading zero from a negative exponent, e-07 to e-7.
	if n := len(buf); n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
		buf[n-2] = buf[n-1]
		buf = buf[:n-1]
	}
	return buf
}

// Equal reports whether a and b are structurally equal. Arrays are equal if
// they have equal elements in the same order. Objects are equal if they have
// the same keys, with equal values.
func Equal(a, b Value) bool {
	switch at := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool, Number, String:
		return a == b
	case Array:
		bt, ok := b.(Array)
		return ok && slices.EqualFunc(at, bt, Equal)
	case Object:
		bt, ok := b.(Object)
		return ok && maps.EqualFunc(at, bt, Equal)
	default:
		return a == nil && b == nil
	}
}
