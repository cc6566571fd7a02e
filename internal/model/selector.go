package model

import "fmt"

// SelectorKind enumerates the ways a marker argument can pick a boundary line
// inside the target file.
type SelectorKind int

const (
	// SelUnbounded uses the file edge: line 1 for a start boundary, the last
	// line for an end boundary.
	SelUnbounded SelectorKind = iota
	// SelLine is a 1-based absolute line number.
	SelLine
	// SelNegOffset counts back from the last line; valid on end boundaries only.
	SelNegOffset
	// SelText picks the first line whose trimmed content equals the text.
	SelText
)

// Selector describes how one boundary of a target range is chosen.
type Selector struct {
	Kind SelectorKind
	Line int
	Text string
}

// Unbounded returns the default selector for a boundary without an argument.
func Unbounded() Selector { return Selector{Kind: SelUnbounded} }

// LineSelector selects an absolute 1-based line number.
func LineSelector(n int) Selector { return Selector{Kind: SelLine, Line: n} }

// NegOffsetSelector selects n lines back from the end of the file.
func NegOffsetSelector(n int) Selector { return Selector{Kind: SelNegOffset, Line: n} }

// TextSelector selects the first line equal to text after trimming.
func TextSelector(text string) Selector { return Selector{Kind: SelText, Text: text} }

func (s Selector) String() string {
	switch s.Kind {
	case SelLine:
		return fmt.Sprintf("%d", s.Line)
	case SelNegOffset:
		return fmt.Sprintf("-%d", s.Line)
	case SelText:
		return fmt.Sprintf("%q", s.Text)
	default:
		return "unbounded"
	}
}
