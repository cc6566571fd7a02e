package model

import "testing"

func TestPosFromOffset(t *testing.T) {
	s := "abc\ndef"

	check := func(offset, line, column int) {
		t.Helper()

		got := PosFromOffset(s, offset)
		want := TextPos{Line: line, Column: column}

		if got != want {
			t.Errorf("PosFromOffset(%q, %d) = %v, want %v", s, offset, got, want)
		}
	}

	check(0, 1, 1)
	check(1, 1, 2)
	check(2, 1, 3)
	check(3, 1, 4)
	check(4, 2, 1)
	check(5, 2, 2)
}

func TestPosFromOffsetPastEnd(t *testing.T) {
	got := PosFromOffset("ab", 10)
	if got.Line != 1 || got.Column != 3 {
		t.Errorf("expected 1:3, got %v", got)
	}
}

func TestTextPosString(t *testing.T) {
	p := TextPos{Line: 3, Column: 7}
	if p.String() != "3:7" {
		t.Errorf("expected 3:7, got %s", p)
	}
}
