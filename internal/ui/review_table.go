package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PendingChange is one file whose normalized content differs from disk.
type PendingChange struct {
	Path        string
	Removed     int    // blank lines dropped or collapsed
	Fingerprint string // short digest of the replacement content
}

// ReviewChanges opens an interactive Bubble Tea table over the pending
// changes. It returns true when the user chose to apply them.
func ReviewChanges(_ context.Context, changes []PendingChange) (bool, error) {
	cols := []table.Column{
		{Title: "File", Width: 48},
		{Title: "Blanks removed", Width: 14},
		{Title: "Digest", Width: 12},
	}

	rows := make([]table.Row, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, table.Row{
			truncate(c.Path, 48),
			fmt.Sprintf("%d", c.Removed),
			c.Fingerprint,
		})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(12, max(3, len(rows)+3))),
	)

	// Basic styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := model{table: t}
	p := tea.NewProgram(m)
	res, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := res.(model)
	if !ok {
		return false, nil
	}
	return final.apply, nil
}

type model struct {
	table table.Model
	apply bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.apply = false
			return m, tea.Quit
		case "enter", "a":
			m.apply = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.table.Height() < 3 {
		return "(no pending changes)\n"
	}
	return m.table.View() + "\n↑/↓ to browse • enter/a to apply • q to cancel\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
