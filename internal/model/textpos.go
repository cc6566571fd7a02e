package model

import "fmt"

// TextPos is a 1-based line/column position inside a text buffer.
type TextPos struct {
	Line   int
	Column int
}

func (p TextPos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PosFromOffset converts a byte offset into a line/column position. Offsets
// past the end of s resolve to the position after the last character.
func PosFromOffset(s string, offset int) TextPos {
	pos := TextPos{Line: 1, Column: 1}

	for i, c := range s {
		if i >= offset {
			break
		}

		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}

// LineFromOffset returns just the 1-based line number for a byte offset.
func LineFromOffset(s string, offset int) int {
	return PosFromOffset(s, offset).Line
}
