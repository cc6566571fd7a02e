// Package domain implements the marker-and-range resolution engine: scanning
// source files for include markers, resolving target paths and line ranges,
// rendering doc-comment blocks, and splicing them back in place.
package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	m "github.com/docweld/docweld/internal/model"
)

// markerRE matches one annotation on its own comment line. Group 1 is the `!`
// of the enclosing-item form, group 2 the quoted target path, group 3 the
// role keyword, group 4 a quoted text argument, group 5 the minus sign and
// group 6 the digits of a numeric argument. A line that carries the
// include_doc attribute shape but fails the argument groups still matches as
// a whole (the trailing `|.*` alternative), which is how malformed markers
// are caught instead of skipped.
var markerRE = regexp.MustCompile(
	`(?m:^[ \t]*//[ \t]*#(!?)\[[ \t]*include_doc(?:[ \t]*\([ \t]*"([^"]*)"[ \t]*,[ \t]*(start|end)[ \t]*(?:\([ \t]*(?:"([^"]*)"|(-)?([0-9]+))[ \t]*\)[ \t]*)?\)[ \t]*|.*)\][ \t]*$)`,
)

// markerRole is the role keyword of a single annotation line.
type markerRole int

const (
	roleStart markerRole = iota
	roleEnd
)

// rawMarker is one parsed annotation line before pair matching.
type rawMarker struct {
	span     m.LineSpan
	kind     m.MarkerKind
	target   string
	role     markerRole
	selector m.Selector
}

// scanMarkers finds every annotation line in src in order. Malformed marker
// lines are reported through onErr and excluded from the result; pair
// matching happens later in matchPairs.
func scanMarkers(src string, onErr func(span m.LineSpan, detail string)) []rawMarker {
	var markers []rawMarker

	for _, idx := range markerRE.FindAllStringSubmatchIndex(src, -1) {
		span := m.LineSpan{
			Start: idx[0],
			End:   idx[1],
			Line:  m.LineFromOffset(src, idx[0]),
		}

		mk, ok := parseMarker(src, idx, span)
		if !ok {
			onErr(span, src[idx[0]:idx[1]])
			continue
		}

		markers = append(markers, mk)
	}

	return markers
}

func parseMarker(src string, idx []int, span m.LineSpan) (rawMarker, bool) {
	group := func(n int) (string, bool) {
		if idx[2*n] < 0 {
			return "", false
		}

		return src[idx[2*n]:idx[2*n+1]], true
	}

	target, ok := group(2)
	if !ok {
		return rawMarker{}, false
	}

	roleStr, ok := group(3)
	if !ok {
		return rawMarker{}, false
	}

	mk := rawMarker{span: span, target: target, selector: m.Unbounded()}

	if bang, _ := group(1); bang == "!" {
		mk.kind = m.KindEnclosingItem
	} else {
		mk.kind = m.KindNextItem
	}

	if roleStr == "end" {
		mk.role = roleEnd
	}

	if text, ok := group(4); ok {
		mk.selector = m.TextSelector(text)
	} else if digits, ok := group(6); ok {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return rawMarker{}, false
		}

		if _, negative := group(5); negative {
			// Counting back from the end only makes sense on an end boundary.
			if mk.role != roleEnd {
				return rawMarker{}, false
			}

			mk.selector = m.NegOffsetSelector(n)
		} else {
			mk.selector = m.LineSelector(n)
		}
	}

	return mk, true
}

// matchPairs pairs starts with the nearest following end for the same target.
// A second start for a target that already has one pending is unsupported
// nesting and reported as an unterminated first start. Matching itself lets
// different targets interleave; checkOverlaps rejects the resulting pairs
// afterwards.
func matchPairs(file m.Path, markers []rawMarker) ([]m.MarkerPair, []*m.SyncError) {
	var (
		pairs   []m.MarkerPair
		errs    []*m.SyncError
		pending = make(map[string]rawMarker)
		order   []string // pending targets in first-seen order
	)

	for _, mk := range markers {
		switch mk.role {
		case roleStart:
			if open, ok := pending[mk.target]; ok {
				errs = append(errs, &m.SyncError{
					Kind:       m.FailUnterminatedMarker,
					SourceFile: file,
					Line:       open.span.Line,
					Target:     open.target,
					Detail:     "another start for the same target before its end",
				})
				delete(pending, mk.target)
				order = removeTarget(order, mk.target)
			}

			pending[mk.target] = mk
			order = append(order, mk.target)

		case roleEnd:
			open, ok := pending[mk.target]
			if !ok {
				errs = append(errs, &m.SyncError{
					Kind:       m.FailDanglingEnd,
					SourceFile: file,
					Line:       mk.span.Line,
					Target:     mk.target,
				})

				continue
			}

			delete(pending, mk.target)
			order = removeTarget(order, mk.target)

			if open.kind != mk.kind {
				errs = append(errs, &m.SyncError{
					Kind:       m.FailMismatchedKind,
					SourceFile: file,
					Line:       mk.span.Line,
					Target:     mk.target,
					Detail:     "start is " + open.kind.String() + ", end is " + mk.kind.String(),
				})

				continue
			}

			pairs = append(pairs, m.MarkerPair{
				Kind:       open.kind,
				TargetPath: open.target,
				StartSel:   open.selector,
				EndSel:     mk.selector,
				StartSpan:  open.span,
				EndSpan:    mk.span,
			})
		}
	}

	for _, target := range order {
		open := pending[target]
		errs = append(errs, &m.SyncError{
			Kind:       m.FailUnterminatedMarker,
			SourceFile: file,
			Line:       open.span.Line,
			Target:     open.target,
		})
	}

	return pairs, errs
}

func removeTarget(order []string, target string) []string {
	for i, t := range order {
		if t == target {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}

// ScanPairs runs the full marker scan over a source file: find annotation
// lines, report malformed ones, match starts with ends, and reject pairs
// whose regions overlap. The returned pairs are ordered by their start
// marker's position.
func ScanPairs(file m.Path, src string) ([]m.MarkerPair, []*m.SyncError) {
	var errs []*m.SyncError

	markers := scanMarkers(src, func(span m.LineSpan, detail string) {
		errs = append(errs, &m.SyncError{
			Kind:       m.FailBadMarker,
			SourceFile: file,
			Line:       span.Line,
			Detail:     detail,
		})
	})

	pairs, matchErrs := matchPairs(file, markers)
	errs = append(errs, matchErrs...)

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].StartSpan.Start < pairs[j].StartSpan.Start
	})

	errs = append(errs, checkOverlaps(file, pairs)...)

	return pairs, errs
}

// checkOverlaps reports every pair whose start marker falls inside an earlier
// pair's region. Syncing such a pair would write rendered content over the
// other pair's marker lines, so overlapping pairs fail instead of being
// spliced. Pairs must be sorted by start position.
func checkOverlaps(file m.Path, pairs []m.MarkerPair) []*m.SyncError {
	var errs []*m.SyncError

	openEnd := 0

	var open m.MarkerPair

	for _, p := range pairs {
		if p.StartSpan.Start < openEnd {
			errs = append(errs, &m.SyncError{
				Kind:       m.FailOverlappingPairs,
				SourceFile: file,
				Line:       p.StartSpan.Line,
				Target:     p.TargetPath,
				Detail: fmt.Sprintf("inside the pair for %q started at line %d",
					open.TargetPath, open.StartSpan.Line),
			})
		}

		if p.EndSpan.End > openEnd {
			openEnd = p.EndSpan.End
			open = p
		}
	}

	return errs
}
