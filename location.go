package jvalue

import (
	"fmt"
	"strings"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate returns the line and column of the given byte offset in text.
// Offsets past the end of text are clamped.
func locate(text string, offset int) LineCol {
	offset = min(max(offset, 0), len(text))
	head := text[:offset]
	line := strings.Count(head, "\n") + 1
	col := offset - (strings.LastIndexByte(head, '\n') + 1)
	return LineCol{Line: line, Column: col}
}
