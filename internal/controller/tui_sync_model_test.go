package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/docweld/docweld/internal/model"
)

func TestSyncModelCountsFiles(t *testing.T) {
	model := newSyncModel(3)

	next, _ := model.Update(fileDoneMsg{res: m.FileResult{Path: "a.rs"}})
	next, _ = next.Update(fileDoneMsg{res: m.FileResult{Path: "b.rs"}})

	s, ok := next.(syncModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}

	if s.done != 2 {
		t.Errorf("done = %d, want 2", s.done)
	}

	if s.lastFile != "b.rs" {
		t.Errorf("lastFile = %q", s.lastFile)
	}

	if !strings.Contains(s.View(), "2") {
		t.Error("progress view missing completed count")
	}
}

func TestSyncModelFinishedRendersSummary(t *testing.T) {
	model := newSyncModel(1)

	next, cmd := model.Update(finishedMsg{results: []m.FileResult{
		{Path: "a.rs", Pairs: 1, Changed: true, Written: true},
	}})

	if cmd == nil {
		t.Fatal("expected quit command")
	}

	view := next.View()

	if !strings.Contains(view, "1 file(s), 1 marker pair(s), 1 changed, 1 written, 0 failed") {
		t.Errorf("summary view = %q", view)
	}
}

func TestSyncModelQuitsOnKey(t *testing.T) {
	model := newSyncModel(1)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command on q")
	}
}
