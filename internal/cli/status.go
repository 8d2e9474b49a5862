package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	styleFixed     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleUnchanged = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// styled applies a lipgloss style only when w is a terminal, so piped
// output stays plain.
func styled(w io.Writer, s lipgloss.Style, text string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return text
	}
	return s.Render(text)
}

func notifyFixed(w io.Writer, path string, removed int) {
	noun := "blank lines"
	if removed == 1 {
		noun = "blank line"
	}
	fmt.Fprintln(w, styled(w, styleFixed, fmt.Sprintf("fixed %s (%d %s removed)", path, removed, noun)))
}

func notifySummary(w io.Writer, changed, total int) {
	if changed == 0 {
		fmt.Fprintln(w, styled(w, styleUnchanged, "No changes."))
		return
	}
	fmt.Fprintln(w, styled(w, styleFixed, fmt.Sprintf("%d of %d file(s) changed", changed, total)))
}
