// Package app wires configuration, logging and the user interfaces into the
// calculator application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/tui"
	"github.com/agbru/bigcalc/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errWriter, "%v\n", err)
		}
		return nil, err
	}
	cfg = config.ApplyAdaptiveDefaults(cfg)

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)
	bigint.SetThresholds(a.Config.Toom2Threshold, a.Config.Toom3Threshold)

	if a.Config.Eval != "" {
		return a.runEval(out)
	}
	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runREPL()
}

// runEval evaluates a single line and exits.
func (a *Application) runEval(out io.Writer) int {
	engine := calc.New(out)
	engine.SetHexMode(a.Config.Hex)
	engine.EvalLine(a.Config.Eval)
	return apperrors.ExitSuccess
}

// runTUI launches the full-screen calculator.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, a.Config, Version)
}

// runREPL starts the interactive line session.
func (a *Application) runREPL() int {
	repl := cli.NewREPL(cli.REPLConfig{HexOutput: a.Config.Hex})
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
