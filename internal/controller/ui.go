// Package controller provides output adapters for displaying sync progress
// and results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/docweld/docweld/internal/model"
)

// UI defines the interface for displaying a sync run. Implementations can use
// different output methods (simple text, TUI, etc).
type UI interface {
	// Start is called once before processing, with the number of files.
	Start(total int) error

	// Close finalizes the UI.
	Close()

	// DisplayFileResult reports one file as it finishes. Calls are
	// serialized by the workflow.
	DisplayFileResult(res m.FileResult)

	// DisplaySummary renders the final per-error report and run totals.
	DisplaySummary(results []m.FileResult) error

	// DisplayList renders the marker inventory table for the list command.
	DisplayList(results []m.FileResult) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns a TUI (Bubble Tea progress view); otherwise a SimpleUI
// (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY). Returns false if the
// output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
