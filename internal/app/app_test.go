package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestNewParsesFlags(t *testing.T) {
	a, err := New([]string{"bigcalc", "-eval", "2 3 +", "-hex"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Config.Eval != "2 3 +" || !a.Config.Hex {
		t.Errorf("config = %+v", a.Config)
	}
	// Adaptive defaults must have filled the performance knobs.
	if a.Config.Toom2Threshold <= 0 || a.Config.Workers <= 0 {
		t.Errorf("adaptive defaults missing: %+v", a.Config)
	}
}

func TestNewHelp(t *testing.T) {
	_, err := New([]string{"bigcalc", "-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !IsHelpError(err) {
		t.Error("IsHelpError(flag.ErrHelp) = false")
	}
}

func TestNewReportsConfigErrors(t *testing.T) {
	var sb strings.Builder
	if _, err := New([]string{"bigcalc", "-workers", "-3"}, &sb); err == nil {
		t.Fatal("invalid config accepted")
	}
	if !strings.Contains(sb.String(), "workers") {
		t.Errorf("error not reported to errWriter: %q", sb.String())
	}
}

func TestRunEval(t *testing.T) {
	a, err := New([]string{"bigcalc", "-eval", "930350724 1000000000 * 101083004 +", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var sb strings.Builder
	if code := a.Run(context.Background(), &sb); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := sb.String(); got != "930350724101083004\n" {
		t.Errorf("eval output = %q", got)
	}
}

func TestRunEvalHex(t *testing.T) {
	a, err := New([]string{"bigcalc", "-eval", "255", "-hex", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var sb strings.Builder
	a.Run(context.Background(), &sb)
	if got := sb.String(); got != "0xff\n" {
		t.Errorf("hex eval output = %q", got)
	}
}

func TestVersion(t *testing.T) {
	if !HasVersionFlag([]string{"--version"}) || HasVersionFlag([]string{"-eval", "1"}) {
		t.Error("HasVersionFlag misbehaves")
	}
	var sb strings.Builder
	PrintVersion(&sb)
	if !strings.Contains(sb.String(), "bigcalc") {
		t.Errorf("version banner = %q", sb.String())
	}
}
