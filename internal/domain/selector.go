package domain

import (
	"fmt"
	"strings"

	m "github.com/docweld/docweld/internal/model"
)

// LineRange is an inclusive, 1-based range of lines within a target file.
type LineRange struct {
	First int
	Last  int
}

// rangeError builds a pair-level failure annotated with the marker that asked
// for the range.
func rangeError(pair m.MarkerPair, span m.LineSpan, kind m.FailureKind, detail string) *m.SyncError {
	return &m.SyncError{
		Kind:   kind,
		Line:   span.Line,
		Target: pair.TargetPath,
		Detail: detail,
	}
}

// ResolveRange turns a pair's start/end selectors into a concrete line range
// over the target file's lines. Out-of-range and missing-text selectors fail
// rather than clamp, and an end boundary resolving before the start is an
// inverted range, never an empty one.
func ResolveRange(pair m.MarkerPair, lines []string) (LineRange, *m.SyncError) {
	total := len(lines)

	first, err := resolveStart(pair, lines, total)
	if err != nil {
		return LineRange{}, err
	}

	last, err := resolveEnd(pair, lines, total, first)
	if err != nil {
		return LineRange{}, err
	}

	if first > last {
		return LineRange{}, rangeError(pair, pair.EndSpan, m.FailInvertedRange,
			fmt.Sprintf("start resolves to line %d, end to line %d", first, last))
	}

	return LineRange{First: first, Last: last}, nil
}

func resolveStart(pair m.MarkerPair, lines []string, total int) (int, *m.SyncError) {
	sel := pair.StartSel

	switch sel.Kind {
	case m.SelUnbounded:
		if total == 0 {
			return 0, rangeError(pair, pair.StartSpan, m.FailLineOutOfRange, "target file is empty")
		}

		return 1, nil

	case m.SelLine:
		if sel.Line < 1 || sel.Line > total {
			return 0, rangeError(pair, pair.StartSpan, m.FailLineOutOfRange,
				fmt.Sprintf("start(%d) with %d lines", sel.Line, total))
		}

		return sel.Line, nil

	case m.SelText:
		n, ok := findText(lines, 1, sel.Text)
		if !ok {
			return 0, rangeError(pair, pair.StartSpan, m.FailTextNotFound,
				fmt.Sprintf("start(%q)", sel.Text))
		}

		return n, nil
	}

	// SelNegOffset on a start boundary is rejected during marker parsing.
	return 0, rangeError(pair, pair.StartSpan, m.FailLineOutOfRange, "unsupported start selector")
}

func resolveEnd(pair m.MarkerPair, lines []string, total, first int) (int, *m.SyncError) {
	sel := pair.EndSel

	switch sel.Kind {
	case m.SelUnbounded:
		if total == 0 {
			return 0, rangeError(pair, pair.EndSpan, m.FailLineOutOfRange, "target file is empty")
		}

		return total, nil

	case m.SelLine:
		if sel.Line < 1 || sel.Line > total {
			return 0, rangeError(pair, pair.EndSpan, m.FailLineOutOfRange,
				fmt.Sprintf("end(%d) with %d lines", sel.Line, total))
		}

		return sel.Line, nil

	case m.SelNegOffset:
		n := total - sel.Line + 1
		if n < 1 || n > total {
			return 0, rangeError(pair, pair.EndSpan, m.FailLineOutOfRange,
				fmt.Sprintf("end(-%d) with %d lines", sel.Line, total))
		}

		return n, nil

	case m.SelText:
		// Scan at or after the start line so an identical line earlier in the
		// file cannot close the range.
		n, ok := findText(lines, first, sel.Text)
		if !ok {
			// A match that exists only before the start line resolves there
			// so the first > last post-condition reports an inverted range
			// instead of a missing text.
			if n, ok = findText(lines, 1, sel.Text); ok {
				return n, nil
			}

			return 0, rangeError(pair, pair.EndSpan, m.FailTextNotFound,
				fmt.Sprintf("end(%q) at or after line %d", sel.Text, first))
		}

		return n, nil
	}

	return 0, rangeError(pair, pair.EndSpan, m.FailLineOutOfRange, "unsupported end selector")
}

// findText returns the 1-based index of the first line at or after from whose
// trimmed content equals text.
func findText(lines []string, from int, text string) (int, bool) {
	if from < 1 {
		from = 1
	}

	for i := from - 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == text {
			return i + 1, true
		}
	}

	return 0, false
}
