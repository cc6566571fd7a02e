// Package model defines the data structures for doc-comment synchronization.
package model

// Path represents a file system path.
type Path string

// MarkerKind distinguishes the two annotation forms and decides which
// doc-comment prefix rendered lines receive.
type MarkerKind int

const (
	// KindNextItem documents the item following the block (`/// ` prefix).
	KindNextItem MarkerKind = iota
	// KindEnclosingItem documents the enclosing item (`//! ` prefix).
	KindEnclosingItem
)

// DocPrefix returns the doc-comment prefix for the kind, including the
// trailing space used before non-empty content.
func (k MarkerKind) DocPrefix() string {
	if k == KindEnclosingItem {
		return "//! "
	}

	return "/// "
}

func (k MarkerKind) String() string {
	if k == KindEnclosingItem {
		return "enclosing-item"
	}

	return "next-item"
}

// LineSpan locates one marker line inside a source file. Start and End are
// byte offsets of the line's first byte and of the byte past its last content
// byte (excluding the line terminator). Line is 1-based.
type LineSpan struct {
	Start int
	End   int
	Line  int
}

// MarkerPair is a matched start/end annotation delimiting a content span that
// is kept in sync with an external file. The marker lines themselves are never
// rewritten; only the bytes strictly between them are.
type MarkerPair struct {
	Kind       MarkerKind
	TargetPath string
	StartSel   Selector
	EndSel     Selector
	StartSpan  LineSpan
	EndSpan    LineSpan
}

// ContentStart returns the byte offset of the first byte of the content span,
// i.e. the byte following the start marker's line terminator.
func (p MarkerPair) ContentStart(src string) int {
	i := p.StartSpan.End

	for i < len(src) && src[i] != '\n' {
		i++
	}

	if i < len(src) {
		i++ // consume the newline itself
	}

	return i
}

// ContentEnd returns the byte offset one past the last content byte, i.e. the
// first byte of the end marker line.
func (p MarkerPair) ContentEnd() int {
	return p.EndSpan.Start
}
