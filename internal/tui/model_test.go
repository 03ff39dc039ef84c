package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bigcalc/internal/config"
)

// typeLine feeds a line of runes and an enter keypress into the model.
func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	var model tea.Model = m
	for _, r := range line {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(Model)
}

func newTestModel() Model {
	m := NewModel(config.AppConfig{}, "test")
	m.width = 100
	m.height = 30
	return m
}

func TestModelEvaluatesInput(t *testing.T) {
	m := typeLine(t, newTestModel(), "30 12 +")
	view := m.View()
	if !strings.Contains(view, "42") {
		t.Errorf("view does not show the result:\n%s", view)
	}
	if !strings.Contains(view, "> 30 12 +") {
		t.Errorf("view does not echo the input:\n%s", view)
	}
}

func TestModelShowsExceptions(t *testing.T) {
	m := typeLine(t, newTestModel(), "1 0 /")
	found := false
	for _, line := range m.log {
		if strings.HasPrefix(line, "exception:") {
			found = true
		}
	}
	if !found {
		t.Errorf("log has no exception line: %v", m.log)
	}
}

func TestModelHexToggle(t *testing.T) {
	m := newTestModel()
	if m.engine.HexMode() {
		t.Fatal("hex mode on by default")
	}
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(Model)
	if !m.engine.HexMode() {
		t.Error("tab did not enable hex mode")
	}
	if !strings.Contains(m.View(), "hex") {
		t.Error("header does not show the hex mode")
	}
}

func TestModelQuitOnCtrlC(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c produced no command")
	}
	if msg := cmd(); msg == nil {
		t.Error("ctrl+c command produced no message")
	}
}

func TestModelQuitCommand(t *testing.T) {
	m := typeLine(t, newTestModel(), "quit")
	if !m.done {
		t.Error("quit line did not end the session")
	}
}

func TestModelClearLog(t *testing.T) {
	m := typeLine(t, newTestModel(), "1 2 +")
	if len(m.log) == 0 {
		t.Fatal("log empty after evaluation")
	}
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if m = model.(Model); len(m.log) != 0 {
		t.Errorf("ctrl+l left %d log lines", len(m.log))
	}
}

func TestTruncateValue(t *testing.T) {
	if got := truncateValue("12345", 10); got != "12345" {
		t.Errorf("short value truncated: %q", got)
	}
	long := strings.Repeat("9", 100)
	got := truncateValue(long, 21)
	if len([]rune(got)) != 21 || !strings.Contains(got, "…") {
		t.Errorf("truncated value = %q", got)
	}
}
