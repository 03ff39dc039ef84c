// Command bigstress runs the randomized differential stress harness: random
// operand pairs flow through the engine and a reference oracle, and every
// disagreement is reported. A non-zero mismatch count fails the run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/progress"
	"github.com/agbru/bigcalc/internal/server"
	"github.com/agbru/bigcalc/internal/stress"
	"github.com/agbru/bigcalc/internal/sysmon"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseConfig("bigstress", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return apperrors.ExitErrorConfig
	}
	cfg = config.ApplyAdaptiveDefaults(cfg)
	bigint.SetThresholds(cfg.Toom2Threshold, cfg.Toom3Threshold)

	logger := logging.NewDefaultLogger()
	if cfg.Quiet {
		logger = logging.NewLogger(os.Stderr, "bigstress")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var m *server.Metrics
	if cfg.MetricsAddr != "" {
		m = server.NewMetrics()
		srv := server.New(cfg.MetricsAddr, m, logger)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Error("metrics endpoint failed", err)
			}
		}()
	}

	logger.Info("starting stress run",
		logging.Int("workers", cfg.Workers),
		logging.Uint64("iterations", cfg.Iterations),
		logging.Int("max_bits", cfg.MaxBits),
		logging.Int64("seed", seed),
	)

	updates := make(chan progress.Update, 4*cfg.Workers)
	var displayWg sync.WaitGroup
	if !cfg.Quiet {
		displayWg.Add(1)
		go cli.DisplayProgress(&displayWg, updates, cfg.Iterations, os.Stderr)
	}

	report, runErr := stress.Run(ctx, stress.Config{
		Workers:    cfg.Workers,
		Iterations: cfg.Iterations,
		MaxBits:    cfg.MaxBits,
		Seed:       seed,
		Logger:     logger,
		Metrics:    m,
		Updates:    updates,
	})
	close(updates)
	displayWg.Wait()

	printReport(report)

	switch {
	case errors.Is(runErr, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	case errors.Is(runErr, context.Canceled):
		return apperrors.ExitErrorCanceled
	case runErr != nil:
		logger.Error("stress run failed", runErr)
		return apperrors.ExitErrorGeneric
	case report.MismatchCount > 0:
		return apperrors.ExitErrorMismatch
	default:
		return apperrors.ExitSuccess
	}
}

// printReport renders the end-of-run summary to stdout.
func printReport(r stress.Report) {
	fmt.Printf("\n--- Stress Summary ---\n")
	fmt.Printf("Oracle:     %s\n", r.OracleName)
	fmt.Printf("Operations: %s in %s (%s)\n",
		format.FormatCount(r.Ops),
		format.FormatExecutionDuration(r.Elapsed),
		format.FormatRate(r.Ops, r.Elapsed))
	fmt.Printf("GC cycles:  %d\n", r.MemAfter.GCCyclesSince(r.MemBefore))
	printSystem(r.System)
	if r.MismatchCount == 0 {
		fmt.Printf("Status:     OK, no mismatches\n")
		return
	}
	fmt.Printf("Status:     FAILED, %d mismatches\n", r.MismatchCount)
	for _, mm := range r.Mismatches {
		fmt.Printf("  %v\n", mm)
	}
}

// printSystem renders the resource snapshot when one was collected.
func printSystem(s sysmon.Stats) {
	if s.CPUPercent == 0 && s.MemPercent == 0 {
		return
	}
	fmt.Printf("System:     cpu %.0f%%, mem %.0f%%\n", s.CPUPercent, s.MemPercent)
}
