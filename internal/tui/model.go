// Package tui implements the full-screen calculator: the same RPN engine as
// the line REPL, wrapped in a bubbletea dashboard with a live stack view and
// a session log.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/config"
)

// maxLogLines bounds the session log kept in memory.
const maxLogLines = 500

// Model is the root bubbletea model of the calculator.
type Model struct {
	engine *calc.Engine
	buf    *bytes.Buffer

	input  textinput.Model
	help   help.Model
	keymap KeyMap

	log     []string
	width   int
	height  int
	version string
	done    bool
}

// NewModel creates a TUI model for the given configuration.
func NewModel(cfg config.AppConfig, version string) Model {
	buf := &bytes.Buffer{}
	engine := calc.New(buf)
	engine.SetHexMode(cfg.Hex)

	input := textinput.New()
	input.Placeholder = "930350724 1000000000 * 101083004 +"
	input.Prompt = "> "
	input.PromptStyle = promptStyle
	input.Focus()

	return Model{
		engine:  engine,
		buf:     buf,
		input:   input,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		version: version,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Eval):
			return m.evalInput()
		case key.Matches(msg, m.keymap.ToggleHex):
			m.engine.SetHexMode(!m.engine.HexMode())
			return m, nil
		case key.Matches(msg, m.keymap.ClearLog):
			m.log = nil
			return m, nil
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evalInput runs the entered line through the engine and folds its output
// into the session log.
func (m Model) evalInput() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.appendLog("> " + line)

	quit := m.engine.EvalLine(line)
	for _, out := range strings.Split(strings.TrimRight(m.buf.String(), "\n"), "\n") {
		if out != "" {
			m.appendLog(out)
		}
	}
	m.buf.Reset()
	m.input.SetValue("")

	if quit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// appendLog adds one line to the bounded session log.
func (m *Model) appendLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	width := max(m.width, 60)

	header := m.viewHeader(width)
	body := m.viewBody(width)
	inputLine := m.input.View()
	footer := m.help.View(m.keymap)

	return strings.Join([]string{header, body, inputLine, footer}, "\n")
}

// viewHeader renders the title bar with the active display mode.
func (m Model) viewHeader(width int) string {
	mode := "dec"
	if m.engine.HexMode() {
		mode = "hex"
	}
	left := titleStyle.Render("bigcalc " + m.version)
	right := modeStyle.Render(mode)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// viewBody renders the stack panel next to the session log panel.
func (m Model) viewBody(width int) string {
	bodyHeight := max(m.height-6, 6)
	stackWidth := width * 2 / 5

	stack := panelStyle.Width(stackWidth).Height(bodyHeight).Render(m.viewStack(bodyHeight))
	logPanel := panelStyle.Width(width - stackWidth - 4).Height(bodyHeight).Render(m.viewLog(bodyHeight))
	return lipgloss.JoinHorizontal(lipgloss.Top, stack, logPanel)
}

// viewStack renders the working stack, top value last.
func (m Model) viewStack(height int) string {
	vals := m.engine.Register(0)
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("stack 0"))
	sb.WriteByte('\n')
	from := 0
	if len(vals) > height-2 {
		from = len(vals) - (height - 2)
	}
	for i := from; i < len(vals); i++ {
		sb.WriteString(stackIndexStyle.Render(fmt.Sprintf("%2d ", len(vals)-i-1)))
		sb.WriteString(stackValueStyle.Render(truncateValue(vals[i], 48)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// viewLog renders the tail of the session log.
func (m Model) viewLog(height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("session"))
	sb.WriteByte('\n')
	from := 0
	if len(m.log) > height-2 {
		from = len(m.log) - (height - 2)
	}
	for _, line := range m.log[from:] {
		style := logLineStyle
		if strings.HasPrefix(line, "exception:") || strings.HasPrefix(line, "unknown op") {
			style = logErrorStyle
		}
		sb.WriteString(style.Render(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// truncateValue elides the middle of very long numbers for display.
func truncateValue(s string, width int) string {
	if len(s) <= width {
		return s
	}
	edge := (width - 1) / 2
	return s[:edge] + "…" + s[len(s)-edge:]
}
