package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/ui"
)

// Style variables for the TUI calculator.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	modeStyle       lipgloss.Style
	stackIndexStyle lipgloss.Style
	stackValueStyle lipgloss.Style
	logLineStyle    lipgloss.Style
	logErrorStyle   lipgloss.Style
	promptStyle     lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	modeStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	stackIndexStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	stackValueStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logLineStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	logErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
