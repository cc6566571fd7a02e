package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/docweld/docweld/internal/model"
)

var (
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SimpleUI implements UI using cobra Command's writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ int) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayFileResult prints one line per file that changed or failed; clean,
// unchanged files stay quiet.
func (s *SimpleUI) DisplayFileResult(res m.FileResult) {
	switch {
	case !res.OK():
		s.printf("%s : %s\n", failStyle.Render("failed"), res.Path)
	case res.Written:
		s.printf("update : %s\n", res.Path)
	case res.Changed:
		s.printf("outdated : %s\n", res.Path)
	}
}

// DisplaySummary renders every collected pair error followed by run totals.
func (s *SimpleUI) DisplaySummary(results []m.FileResult) error {
	for _, res := range results {
		for _, e := range res.Errors {
			s.printf("%s\n", renderError(e))
		}
	}

	sum := m.Summarize(results)
	s.printf("%d file(s), %d marker pair(s), %d changed, %d written, %d failed\n",
		sum.Files, sum.Pairs, sum.Changed, sum.Written, sum.Failed)

	return nil
}

// DisplayList prints the marker inventory table.
func (s *SimpleUI) DisplayList(results []m.FileResult) error {
	if len(results) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Pairs", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	pairs := 0

	for _, res := range results {
		table.Append([]string{string(res.Path), fmt.Sprintf("%d", res.Pairs), listStatus(res)})

		pairs += res.Pairs
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", pairs),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func listStatus(res m.FileResult) string {
	switch {
	case !res.OK():
		return "error"
	case res.Changed:
		return "outdated"
	default:
		return "synced"
	}
}

// renderError formats one pair error in the `--> file:line` / gutter shape.
func renderError(e *m.SyncError) string {
	link := fmt.Sprintf("--> %s:%d", e.SourceFile, e.Line)

	msg := e.Kind.String()
	if e.Target != "" {
		msg += fmt.Sprintf(" (target %q)", e.Target)
	}

	out := linkStyle.Render(link) + "\n " + gutterStyle.Render("|") + " " + msg
	if e.Detail != "" {
		out += "\n " + gutterStyle.Render("|") + " " + e.Detail
	}

	return out
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
