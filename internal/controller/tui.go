package controller

import (
	"bytes"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/tablewriter"

	m "github.com/docweld/docweld/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view for a run over total files.
func (t *TUI) Start(total int) error {
	t.program = tea.NewProgram(newSyncModel(total), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close tears the program down if it is still running.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
		<-t.done
		t.program = nil
	}
}

// DisplayFileResult advances the progress view.
func (t *TUI) DisplayFileResult(res m.FileResult) {
	if t.program != nil {
		t.program.Send(fileDoneMsg{res: res})
	}
}

// DisplaySummary hands the final results to the model and waits for it to
// render them as its last frame.
func (t *TUI) DisplaySummary(results []m.FileResult) error {
	if t.program == nil {
		return nil
	}

	t.program.Send(finishedMsg{results: results})
	<-t.done
	t.program = nil

	return nil
}

// DisplayList renders the marker inventory table. The list command is not
// interactive, so this writes the same table the simple UI produces.
func (t *TUI) DisplayList(results []m.FileResult) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(t.output, "No source files found")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Pairs", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, res := range results {
		table.Append([]string{string(res.Path), fmt.Sprintf("%d", res.Pairs), listStatus(res)})
	}

	table.Render()
	_, _ = fmt.Fprintf(t.output, "\n%s", tableBuffer.String())

	return nil
}
