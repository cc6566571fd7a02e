package domain

import (
	"testing"

	m "github.com/docweld/docweld/internal/model"
)

func scanOne(t *testing.T, s string) rawMarker {
	t.Helper()

	var bad []string

	markers := scanMarkers(s, func(_ m.LineSpan, detail string) {
		bad = append(bad, detail)
	})

	if len(bad) != 0 {
		t.Fatalf("unexpected bad markers %q in %q", bad, s)
	}

	if len(markers) != 1 {
		t.Fatalf("expected 1 marker in %q, got %d", s, len(markers))
	}

	return markers[0]
}

func markerCheck(t *testing.T, s string, kind m.MarkerKind, target string, role markerRole, sel m.Selector) {
	t.Helper()

	mk := scanOne(t, s)

	if mk.kind != kind {
		t.Errorf("kind = %v, want %v (input %q)", mk.kind, kind, s)
	}

	if mk.target != target {
		t.Errorf("target = %q, want %q (input %q)", mk.target, target, s)
	}

	if mk.role != role {
		t.Errorf("role = %v, want %v (input %q)", mk.role, role, s)
	}

	if mk.selector != sel {
		t.Errorf("selector = %v, want %v (input %q)", mk.selector, sel, s)
	}
}

func TestMarkerOuter(t *testing.T) {
	markerCheck(t, `// #[include_doc("abc",start)]`, m.KindNextItem, "abc", roleStart, m.Unbounded())
}

func TestMarkerInner(t *testing.T) {
	markerCheck(t, `// #![include_doc("abc",start)]`, m.KindEnclosingItem, "abc", roleStart, m.Unbounded())
}

func TestMarkerEnd(t *testing.T) {
	markerCheck(t, `// #[include_doc("abc",end)]`, m.KindNextItem, "abc", roleEnd, m.Unbounded())
}

func TestMarkerArgText(t *testing.T) {
	markerCheck(t, `// #[include_doc("abc",start("this is text"))]`,
		m.KindNextItem, "abc", roleStart, m.TextSelector("this is text"))
}

func TestMarkerArgLine(t *testing.T) {
	markerCheck(t, `// #[include_doc("abc",start(10))]`,
		m.KindNextItem, "abc", roleStart, m.LineSelector(10))
}

func TestMarkerArgNegOffsetEnd(t *testing.T) {
	markerCheck(t, `// #[include_doc("abc",end(-2))]`,
		m.KindNextItem, "abc", roleEnd, m.NegOffsetSelector(2))
}

func TestMarkerSpacedArgNone(t *testing.T) {
	markerCheck(t, `  //   #[  include_doc  (  "abc"  ,  start  )  ]  `,
		m.KindNextItem, "abc", roleStart, m.Unbounded())
}

func TestMarkerSpacedArgText(t *testing.T) {
	markerCheck(t, `  //   #[  include_doc  (  "abc"  ,  start  (  "this is text"  )  )  ]  `,
		m.KindNextItem, "abc", roleStart, m.TextSelector("this is text"))
}

func TestMarkerNegOffsetOnStartIsBad(t *testing.T) {
	_, errs := ScanPairs("f.rs", `// #[include_doc("abc",start(-10))]`+"\n")

	if len(errs) != 1 || errs[0].Kind != m.FailBadMarker {
		t.Fatalf("expected one bad-marker error, got %v", errs)
	}
}

func TestMarkerUnknownRoleIsBad(t *testing.T) {
	_, errs := ScanPairs("f.rs", "\n"+`// #[include_doc("abc", unknown)]`+"\n")

	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}

	if errs[0].Kind != m.FailBadMarker {
		t.Errorf("kind = %v, want bad marker", errs[0].Kind)
	}

	if errs[0].Line != 2 {
		t.Errorf("line = %d, want 2", errs[0].Line)
	}
}

func TestScanPairsSimple(t *testing.T) {
	src := `// #[include_doc("abc", start)]
/// old
// #[include_doc("abc", end)]
`

	pairs, errs := ScanPairs("f.rs", src)

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	p := pairs[0]

	if p.TargetPath != "abc" || p.Kind != m.KindNextItem {
		t.Errorf("unexpected pair %+v", p)
	}

	if p.StartSpan.Line != 1 || p.EndSpan.Line != 3 {
		t.Errorf("spans = %d..%d, want 1..3", p.StartSpan.Line, p.EndSpan.Line)
	}
}

func TestScanPairsInterleavedTargetsOverlap(t *testing.T) {
	src := `// #[include_doc("a.md", start)]
// #[include_doc("b.md", start)]
// #[include_doc("a.md", end)]
// #[include_doc("b.md", end)]
`

	pairs, errs := ScanPairs("f.rs", src)

	// Both pairs match, but their regions cover each other's marker lines.
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}

	if len(errs) != 1 || errs[0].Kind != m.FailOverlappingPairs {
		t.Fatalf("expected overlapping-pairs error, got %v", errs)
	}

	if errs[0].Line != 2 || errs[0].Target != "b.md" {
		t.Errorf("error at line %d target %q, want line 2 target b.md", errs[0].Line, errs[0].Target)
	}
}

func TestScanPairsNestedTargetsOverlap(t *testing.T) {
	src := `// #[include_doc("a.md", start)]
// #[include_doc("b.md", start)]
// #[include_doc("b.md", end)]
// #[include_doc("a.md", end)]
`

	_, errs := ScanPairs("f.rs", src)

	if len(errs) != 1 || errs[0].Kind != m.FailOverlappingPairs {
		t.Fatalf("expected overlapping-pairs error, got %v", errs)
	}

	if errs[0].Target != "b.md" {
		t.Errorf("target = %q, want b.md (the enclosed pair)", errs[0].Target)
	}
}

func TestScanPairsSequentialTargetsDoNotOverlap(t *testing.T) {
	src := `// #[include_doc("a.md", start)]
// #[include_doc("a.md", end)]
// #[include_doc("b.md", start)]
// #[include_doc("b.md", end)]
`

	pairs, errs := ScanPairs("f.rs", src)

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
}

func TestScanPairsUnterminated(t *testing.T) {
	_, errs := ScanPairs("f.rs", `// #[include_doc("abc", start)]`+"\n")

	if len(errs) != 1 || errs[0].Kind != m.FailUnterminatedMarker {
		t.Fatalf("expected unterminated marker, got %v", errs)
	}
}

func TestScanPairsDanglingEnd(t *testing.T) {
	_, errs := ScanPairs("f.rs", `// #[include_doc("abc", end)]`+"\n")

	if len(errs) != 1 || errs[0].Kind != m.FailDanglingEnd {
		t.Fatalf("expected dangling end, got %v", errs)
	}
}

func TestScanPairsMismatchedKind(t *testing.T) {
	src := `// #[include_doc("abc", start)]
// #![include_doc("abc", end)]
`

	pairs, errs := ScanPairs("f.rs", src)

	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}

	if len(errs) != 1 || errs[0].Kind != m.FailMismatchedKind {
		t.Fatalf("expected mismatched kind, got %v", errs)
	}
}

func TestScanPairsNestedSameTarget(t *testing.T) {
	src := `// #[include_doc("abc", start)]
// #[include_doc("abc", start)]
// #[include_doc("abc", end)]
`

	pairs, errs := ScanPairs("f.rs", src)

	// The first start is reported; the second start pairs with the end.
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	if len(errs) != 1 || errs[0].Kind != m.FailUnterminatedMarker {
		t.Fatalf("expected unterminated marker for the first start, got %v", errs)
	}

	if errs[0].Line != 1 {
		t.Errorf("error line = %d, want 1", errs[0].Line)
	}
}

func TestScanPairsCarriesSelectors(t *testing.T) {
	src := `// #[include_doc("abc", start(2))]
// #[include_doc("abc", end(-1))]
`

	pairs, errs := ScanPairs("f.rs", src)

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if pairs[0].StartSel != m.LineSelector(2) {
		t.Errorf("start selector = %v", pairs[0].StartSel)
	}

	if pairs[0].EndSel != m.NegOffsetSelector(1) {
		t.Errorf("end selector = %v", pairs[0].EndSel)
	}
}
