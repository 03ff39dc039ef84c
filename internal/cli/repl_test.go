package cli

import (
	"strings"
	"testing"

	"github.com/agbru/bigcalc/internal/ui"
)

func runSession(t *testing.T, hex bool, input string) string {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(prev)

	var sb strings.Builder
	r := NewREPL(REPLConfig{HexOutput: hex})
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&sb)
	r.Start()
	return sb.String()
}

func TestREPLEvaluatesLines(t *testing.T) {
	out := runSession(t, false, "30 12 +\nquit\n")
	if !strings.Contains(out, "42\n") {
		t.Errorf("missing result, got %q", out)
	}
	if !strings.Contains(out, "goodbye") {
		t.Errorf("missing goodbye, got %q", out)
	}
}

func TestREPLHexMode(t *testing.T) {
	out := runSession(t, true, "255\nquit\n")
	if !strings.Contains(out, "0xff\n") {
		t.Errorf("missing hex result, got %q", out)
	}
}

func TestREPLHandlesEOF(t *testing.T) {
	out := runSession(t, false, "1 2 +")
	if !strings.Contains(out, "3\n") {
		t.Errorf("final unterminated line not evaluated, got %q", out)
	}
	if !strings.Contains(out, "goodbye") {
		t.Errorf("missing goodbye on EOF, got %q", out)
	}
}

func TestREPLBanner(t *testing.T) {
	out := runSession(t, false, "")
	if !strings.Contains(out, "bigcalc") || !strings.Contains(out, "h for help") {
		t.Errorf("banner missing, got %q", out)
	}
}
