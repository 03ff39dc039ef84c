// Package stress implements the randomized differential stress harness: a
// pool of workers generates random operand pairs, applies a random operator
// through the engine and through a reference oracle, and reports every
// disagreement.
package stress

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/progress"
	"github.com/agbru/bigcalc/internal/server"
	"github.com/agbru/bigcalc/internal/sysmon"
)

// tracerName identifies this package's otel tracer.
const tracerName = "github.com/agbru/bigcalc/internal/stress"

// progressEvery is how many operations a worker completes between progress
// updates.
const progressEvery = 256

// maxReportedMismatches bounds the mismatch list carried in the report; the
// totals keep counting past it.
const maxReportedMismatches = 10

// opKind selects how the right operand is generated.
type opKind int

const (
	kindBinary   opKind = iota // full-range operand
	kindDivisor                // full-range, never zero
	kindShift                  // small non-negative count
)

// opSpec couples an operator token with its engine implementation.
type opSpec struct {
	token  string
	kind   opKind
	engine func(x, y *bigint.Int) (*bigint.Int, error)
}

// ops is the operator mix exercised by the harness.
var ops = []opSpec{
	{"+", kindBinary, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Add(x, y), nil }},
	{"-", kindBinary, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Sub(x, y), nil }},
	{"*", kindBinary, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Mul(x, y), nil }},
	{"/", kindDivisor, bigint.Div},
	{"%", kindDivisor, bigint.Mod},
	{"&", kindBinary, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.And(x, y), nil }},
	{"|", kindBinary, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Or(x, y), nil }},
	{"^", kindBinary, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Xor(x, y), nil }},
	{"<<", kindShift, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Shl(x, y.Int64()) }},
	{">>", kindShift, func(x, y *bigint.Int) (*bigint.Int, error) { return bigint.Shr(x, y.Int64()) }},
}

// Config parameterizes one stress run.
type Config struct {
	// Workers is the worker pool size; must be >= 1.
	Workers int
	// Iterations is the total operation count across all workers.
	Iterations uint64
	// MaxBits bounds generated operand magnitudes.
	MaxBits int
	// Seed makes a run reproducible; workers derive their own streams.
	Seed int64
	// Oracle supplies reference results; nil selects DefaultOracle.
	Oracle Oracle
	// Logger receives mismatch reports and run summaries.
	Logger logging.Logger
	// Metrics receives per-op counters; optional.
	Metrics *server.Metrics
	// Updates receives progress reports; optional, never closed by Run.
	Updates chan<- progress.Update
}

// Report summarizes a finished run.
type Report struct {
	// Ops is the number of operations checked.
	Ops uint64
	// MismatchCount is the total number of oracle disagreements.
	MismatchCount uint64
	// Mismatches holds the first few disagreements in detail.
	Mismatches []apperrors.MismatchError
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// OracleName identifies the oracle used.
	OracleName string
	// MemBefore and MemAfter bracket the run for GC accounting.
	MemBefore, MemAfter metrics.MemorySnapshot
	// System is a resource snapshot taken at the end of the run.
	System sysmon.Stats
}

// randOperand draws a value of 1..maxBits significant bits, either sign.
func randOperand(rng *rand.Rand, maxBits int) *big.Int {
	bits := 1 + rng.Intn(maxBits)
	// Bias toward limb boundaries, where carry and normalisation bugs live.
	if rng.Intn(4) == 0 {
		bits = (bits/32)*32 + []int{0, 1, 31}[rng.Intn(3)]
		if bits < 1 {
			bits = 1
		}
		if bits > maxBits {
			bits = maxBits
		}
	}
	z := new(big.Int)
	bytes := make([]byte, (bits+7)/8)
	rng.Read(bytes)
	z.SetBytes(bytes)
	z.SetBit(z, bits-1, 1) // pin the requested magnitude
	if rng.Intn(2) == 0 {
		z.Neg(z)
	}
	return z
}

// randRight draws the right operand for the given operator kind.
func randRight(rng *rand.Rand, kind opKind, maxBits int) *big.Int {
	switch kind {
	case kindShift:
		return big.NewInt(int64(rng.Intn(2 * maxBits)))
	case kindDivisor:
		for {
			if d := randOperand(rng, maxBits); d.Sign() != 0 {
				return d
			}
		}
	default:
		return randOperand(rng, maxBits)
	}
}

// Run executes the configured stress batch and returns its report. The
// returned error is non-nil only for harness failures (bad config, context
// cancellation); mismatches are data, not errors.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Workers < 1 {
		return Report{}, apperrors.NewConfigError("stress: workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.MaxBits < 1 {
		return Report{}, apperrors.NewConfigError("stress: max bits must be >= 1, got %d", cfg.MaxBits)
	}
	oracle := cfg.Oracle
	if oracle == nil {
		oracle = DefaultOracle()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	collector := metrics.NewMemoryCollector()
	report := Report{
		OracleName: oracle.Name(),
		MemBefore:  collector.Snapshot(),
	}
	start := time.Now()

	var (
		opsDone    atomic.Uint64
		mismatches atomic.Uint64
		mu         sync.Mutex // guards report.Mismatches
	)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "stress.run")
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	perWorker := cfg.Iterations / uint64(cfg.Workers)
	remainder := cfg.Iterations % uint64(cfg.Workers)

	for w := 0; w < cfg.Workers; w++ {
		worker := w
		quota := perWorker
		if uint64(worker) < remainder {
			quota++
		}
		g.Go(func() error {
			_, wspan := tracer.Start(ctx, "stress.worker",
				trace.WithAttributes(attribute.Int("worker", worker), attribute.Int64("quota", int64(quota))))
			defer wspan.End()

			if cfg.Metrics != nil {
				cfg.Metrics.WorkerStarted()
				defer cfg.Metrics.WorkerStopped()
			}

			rng := rand.New(rand.NewSource(cfg.Seed + int64(worker)*0x9e3779b9))
			var done uint64
			for done < quota {
				if err := ctx.Err(); err != nil {
					return err
				}
				spec := ops[rng.Intn(len(ops))]
				ox := randOperand(rng, cfg.MaxBits)
				oy := randRight(rng, spec.kind, cfg.MaxBits)

				if err := checkOne(spec, oracle, ox, oy, &mismatches, &mu, &report, logger, cfg.Metrics); err != nil {
					return err
				}
				done++
				opsDone.Add(1)
				if cfg.Updates != nil && done%progressEvery == 0 {
					select {
					case cfg.Updates <- progress.Update{Worker: worker, Completed: done}:
					default: // the display is behind; drop the update
					}
				}
			}
			if cfg.Updates != nil {
				select {
				case cfg.Updates <- progress.Update{Worker: worker, Completed: done}:
				default:
				}
			}
			return nil
		})
	}

	err := g.Wait()
	report.Ops = opsDone.Load()
	report.MismatchCount = mismatches.Load()
	report.Elapsed = time.Since(start)
	report.MemAfter = collector.Snapshot()
	report.System = sysmon.Sample()

	logger.Info("stress run finished",
		logging.Uint64("ops", report.Ops),
		logging.Uint64("mismatches", report.MismatchCount),
		logging.String("oracle", report.OracleName),
		logging.Float64("seconds", report.Elapsed.Seconds()),
	)
	return report, err
}

// checkOne runs a single operation through the engine and the oracle and
// records any disagreement.
func checkOne(spec opSpec, oracle Oracle, ox, oy *big.Int,
	mismatches *atomic.Uint64, mu *sync.Mutex, report *Report,
	logger logging.Logger, m *server.Metrics) error {

	x, err := bigint.ParseDecimal(ox.String())
	if err != nil {
		return fmt.Errorf("stress: engine rejected operand %s: %w", ox, err)
	}
	y, err := bigint.ParseDecimal(oy.String())
	if err != nil {
		return fmt.Errorf("stress: engine rejected operand %s: %w", oy, err)
	}

	got, gotErr := spec.engine(x, y)
	want, wantErr := oracle.Apply(spec.token, ox, oy)
	if wantErr != nil {
		return wantErr
	}
	if m != nil {
		m.RecordOp(spec.token)
	}

	ok := gotErr == nil && got.String() == want.String()
	if ok {
		return nil
	}

	gotStr := "<error>"
	if gotErr == nil {
		gotStr = got.Hex()
	}
	mismatch := apperrors.MismatchError{
		Op:   spec.token,
		X:    fmt.Sprintf("%#x", ox),
		Y:    fmt.Sprintf("%#x", oy),
		Got:  gotStr,
		Want: fmt.Sprintf("%#x", want),
	}
	n := mismatches.Add(1)
	if m != nil {
		m.RecordMismatch()
	}
	logger.Error("oracle mismatch", gotErr,
		logging.String("op", spec.token),
		logging.String("x", mismatch.X),
		logging.String("y", mismatch.Y),
		logging.String("got", mismatch.Got),
		logging.String("want", mismatch.Want),
	)
	if n <= maxReportedMismatches {
		mu.Lock()
		report.Mismatches = append(report.Mismatches, mismatch)
		mu.Unlock()
	}
	return nil
}
