// Package config defines the application configuration and its resolution
// chain: command-line flags take precedence over BIGCALC_* environment
// variables, which take precedence over adaptive hardware-based defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "BIGCALC_"

// AppConfig carries every runtime setting of the calculator and the stress
// harness.
type AppConfig struct {
	// Eval is a one-shot RPN line to evaluate instead of starting the REPL.
	Eval string
	// TUI launches the full-screen dashboard instead of the line REPL.
	TUI bool
	// Hex selects hexadecimal output for results.
	Hex bool
	// NoColor disables all ANSI color output.
	NoColor bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet reduces non-result output: the calculator logs errors only, and
	// the stress harness drops its progress spinner and logs JSON lines.
	Quiet bool
	// Timeout bounds a single stress run; zero means no limit.
	Timeout time.Duration

	// Toom2Threshold is the schoolbook→Toom-2 crossover score; 0 = adaptive.
	Toom2Threshold int
	// Toom3Threshold is the Toom-2→Toom-3 crossover score; 0 = adaptive.
	Toom3Threshold int

	// Workers is the stress worker count; 0 = derived from the CPU count.
	Workers int
	// Iterations is the number of stress operations to run.
	Iterations uint64
	// MaxBits bounds the magnitude of generated stress operands.
	MaxBits int
	// Seed seeds the stress generator; 0 derives one from the clock.
	Seed int64
	// MetricsAddr is the listen address of the Prometheus endpoint; empty
	// disables the endpoint.
	MetricsAddr string
}

// ParseConfig parses command-line flags and environment overrides into an
// AppConfig. The returned error is flag.ErrHelp when -h/--help was given.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Iterations: 100_000,
		MaxBits:    2048,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Eval, "eval", "", "evaluate one RPN line and exit")
	fs.StringVar(&cfg.Eval, "e", "", "shorthand for -eval")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the full-screen dashboard")
	fs.BoolVar(&cfg.Hex, "hex", false, "display results in hexadecimal")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable color output")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress non-result output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress non-result output")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "abort a stress run after this duration")

	fs.IntVar(&cfg.Toom2Threshold, "toom2-threshold", 0, "schoolbook→Toom-2 crossover score (0 = adaptive)")
	fs.IntVar(&cfg.Toom3Threshold, "toom3-threshold", 0, "Toom-2→Toom-3 crossover score (0 = adaptive)")

	fs.IntVar(&cfg.Workers, "workers", 0, "stress worker count (0 = derived from the CPU count)")
	fs.Uint64Var(&cfg.Iterations, "iterations", cfg.Iterations, "stress operations to run")
	fs.IntVar(&cfg.MaxBits, "max-bits", cfg.MaxBits, "maximum operand magnitude in bits")
	fs.Int64Var(&cfg.Seed, "seed", 0, "stress generator seed (0 = from clock)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Prometheus endpoint listen address (empty = off)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the application cannot run with.
func (c AppConfig) Validate() error {
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("--verbose and --quiet are mutually exclusive")
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers must be >= 0, got %d", c.Workers)
	}
	if c.MaxBits < 1 {
		return apperrors.NewConfigError("--max-bits must be >= 1, got %d", c.MaxBits)
	}
	if c.Toom2Threshold < 0 || c.Toom3Threshold < 0 {
		return apperrors.NewConfigError("thresholds must be >= 0")
	}
	if c.Toom2Threshold > 0 && c.Toom3Threshold > 0 && c.Toom3Threshold < c.Toom2Threshold {
		return apperrors.NewConfigError("--toom3-threshold (%d) must not be below --toom2-threshold (%d)",
			c.Toom3Threshold, c.Toom2Threshold)
	}
	return nil
}
