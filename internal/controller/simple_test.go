package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/docweld/docweld/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	return NewSimpleUI(cmd), buf
}

func TestSimpleUIFileResultLines(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayFileResult(m.FileResult{Path: "a.rs", Changed: true, Written: true})
	ui.DisplayFileResult(m.FileResult{Path: "b.rs", Changed: true})
	ui.DisplayFileResult(m.FileResult{Path: "c.rs"})
	ui.DisplayFileResult(m.FileResult{
		Path:   "d.rs",
		Errors: []*m.SyncError{{Kind: m.FailDanglingEnd, SourceFile: "d.rs", Line: 3}},
	})

	out := buf.String()
	assert.Contains(t, out, "update : a.rs")
	assert.Contains(t, out, "outdated : b.rs")
	assert.NotContains(t, out, "c.rs")
	assert.Contains(t, out, "d.rs")
}

func TestSimpleUISummaryRendersErrors(t *testing.T) {
	ui, buf := newBufferedUI()

	results := []m.FileResult{
		{Path: "a.rs", Pairs: 2, Changed: true, Written: true},
		{Path: "b.rs", Pairs: 1, Errors: []*m.SyncError{{
			Kind:       m.FailTextNotFound,
			SourceFile: "b.rs",
			Line:       7,
			Target:     "docs/x.md",
			Detail:     `start("# Missing")`,
		}}},
	}

	require.NoError(t, ui.DisplaySummary(results))

	out := buf.String()
	assert.Contains(t, out, "--> b.rs:7")
	assert.Contains(t, out, "text not found")
	assert.Contains(t, out, `"docs/x.md"`)
	assert.Contains(t, out, `start("# Missing")`)
	assert.Contains(t, out, "2 file(s), 3 marker pair(s), 1 changed, 1 written, 1 failed")
}

func TestSimpleUIListTable(t *testing.T) {
	ui, buf := newBufferedUI()

	results := []m.FileResult{
		{Path: "a.rs", Pairs: 2},
		{Path: "b.rs", Pairs: 1, Changed: true},
		{Path: "c.rs", Errors: []*m.SyncError{{Kind: m.FailBadMarker}}},
	}

	require.NoError(t, ui.DisplayList(results))

	out := buf.String()
	assert.Contains(t, out, "a.rs")
	assert.Contains(t, out, "synced")
	assert.Contains(t, out, "outdated")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "Total Files 3")
}

func TestSimpleUIListEmpty(t *testing.T) {
	ui, buf := newBufferedUI()

	require.NoError(t, ui.DisplayList(nil))
	assert.Contains(t, buf.String(), "No source files found")
}
