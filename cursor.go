// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "go4.org/mem"

// A cursor is a view of the unparsed remainder of an input. Cursors are
// passed and returned by value; no method modifies its receiver.
type cursor struct {
	src mem.RO // remaining input
	pos int    // offset of src in the original input
}

func newCursor(text string) cursor { return cursor{src: mem.S(text)} }

// Offset reports the offset of c in the original input.
func (c cursor) Offset() int { return c.pos }

// Len reports the number of bytes remaining.
func (c cursor) Len() int { return c.src.Len() }

// Empty reports whether c has no remaining input.
func (c cursor) Empty() bool { return c.src.Len() == 0 }

// Peek returns the next byte of input, and reports false if c is empty.
func (c cursor) Peek() (byte, bool) {
	if c.src.Len() == 0 {
		return 0, false
	}
	return c.src.At(0), true
}

// Is reports whether the next byte of input is b.
func (c cursor) Is(b byte) bool {
	ch, ok := c.Peek()
	return ok && ch == b
}

// HasPrefix reports whether the remaining input begins with s.
func (c cursor) HasPrefix(s string) bool { return mem.HasPrefix(c.src, mem.S(s)) }

// Advance returns a cursor n bytes further along the input.
// It panics if n > c.Len().
func (c cursor) Advance(n int) cursor {
	return cursor{src: c.src.SliceFrom(n), pos: c.pos + n}
}

// Slice returns a view of the first n bytes of the remaining input.
func (c cursor) Slice(n int) mem.RO { return c.src.SliceTo(n) }

// Span returns a view of the input between c and a later cursor d.
func (c cursor) Span(d cursor) mem.RO { return c.src.SliceTo(d.pos - c.pos) }
