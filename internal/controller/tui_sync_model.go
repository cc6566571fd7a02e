package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/docweld/docweld/internal/model"
)

type tickMsg time.Time

// syncModel handles the TUI display while files are being synced.
type syncModel struct {
	width       int
	progressBar progress.Model
	total       int
	done        int
	lastFile    string
	finished    bool
	results     []m.FileResult
}

func newSyncModel(total int) syncModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return syncModel{progressBar: prog, total: total, width: 80}
}

func (s syncModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return s, tea.Quit
		}

	case tickMsg:
		if s.finished {
			return s, nil
		}

		return s, tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case fileDoneMsg:
		s.done++
		s.lastFile = string(msg.res.Path)

	case finishedMsg:
		s.finished = true
		s.results = msg.results

		return s, tea.Quit
	}

	return s, nil
}

func (s syncModel) View() string {
	if s.finished {
		return s.viewSummary()
	}

	return s.viewProgress()
}

func (s syncModel) viewProgress() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("docweld")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  %s",
		accentStyle.Render(fmt.Sprintf("%d", s.done)),
		accentStyle.Render(fmt.Sprintf("%d", s.total)),
		s.lastFile,
	))

	percent := 0.0
	if s.total > 0 {
		percent = float64(s.done) / float64(s.total)
	}

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(s.progressBar.ViewAs(percent))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 2).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, progressView, footer) + "\n"
}

func (s syncModel) viewSummary() string {
	var b strings.Builder

	for _, res := range s.results {
		for _, e := range res.Errors {
			b.WriteString(renderError(e))
			b.WriteString("\n")
		}
	}

	sum := m.Summarize(s.results)
	b.WriteString(fmt.Sprintf("%d file(s), %d marker pair(s), %d changed, %d written, %d failed\n",
		sum.Files, sum.Pairs, sum.Changed, sum.Written, sum.Failed))

	return b.String()
}
