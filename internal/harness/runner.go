package harness

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/logging"
	"github.com/agbru/mulbench/internal/metrics"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/progress"
)

// ErrMismatch is returned when Verify is set and two algorithms disagree.
var ErrMismatch = errors.New("algorithms returned different products")

var (
	sizesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mulbench_benchmark_sizes_completed_total",
		Help: "Number of input sizes fully measured by the benchmark harness",
	})
	averageSeconds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mulbench_benchmark_average_seconds",
		Help: "Average duration of one multiplication at the most recent size",
	}, []string{"algorithm"})
)

// Sample is emitted after every algorithm has been measured at one size.
type Sample struct {
	Index    int
	Total    int
	Size     int
	Averages map[string]time.Duration
}

// Runner executes a Plan. The zero value is usable.
type Runner struct {
	// Options is passed to every algorithm call.
	Options multiply.Options
	// Verify compares every pair's products across algorithms.
	Verify bool
	Logger logging.Logger
	// OnSample, when set, is called synchronously after each size.
	OnSample func(Sample)
	// Progress receives one task per algorithm; the value is the fraction
	// of sizes measured. The runner never closes it.
	Progress chan<- progress.ProgressUpdate
}

// Run measures each algorithm over the plan. On cancellation or
// failure it returns the sizes completed so far together with the error.
func (r *Runner) Run(ctx context.Context, plan *Plan, algos []multiply.Algorithm) (*Results, error) {
	if plan == nil || len(algos) == 0 {
		return nil, apperrors.HarnessError{Stage: "setup", Cause: errors.New("a plan and at least one algorithm are required")}
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	names := make([]string, len(algos))
	callbacks := make([]progress.ProgressCallback, len(algos))
	for i, a := range algos {
		names[i] = a.Name()
		callbacks[i] = progress.NewChannelCallback(r.Progress, i)
		callbacks[i](0)
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	res := newResults(plan, names, r.Options.Cutoff)
	res.Started = time.Now()
	finish := func(err error) (*Results, error) {
		res.Elapsed = time.Since(res.Started)
		res.Memory = metrics.Delta(before, mem.Snapshot())
		res.Complete = err == nil
		return res, err
	}

	rng := pairRand(plan.Seed)
	for idx, n := range plan.Sizes {
		averages, err := r.measureSize(ctx, rng, n, plan.Pairs, algos)
		if err != nil {
			logger.Warn("benchmark stopped", logging.Int("n", n), logging.Err(err))
			return finish(apperrors.HarnessError{Stage: fmt.Sprintf("size %d", n), Cause: err})
		}

		res.Sizes = append(res.Sizes, n)
		for _, name := range names {
			avg := averages[name]
			res.Series[name] = append(res.Series[name], avg)
			averageSeconds.WithLabelValues(name).Set(avg.Seconds())
		}
		sizesCompleted.Inc()
		logger.Debug("size measured",
			logging.Int("n", n),
			logging.Int("index", idx+1),
			logging.Int("total", len(plan.Sizes)))

		if r.OnSample != nil {
			r.OnSample(Sample{Index: idx, Total: len(plan.Sizes), Size: n, Averages: averages})
		}
		done := progress.Fraction(idx+1, len(plan.Sizes))
		for _, report := range callbacks {
			report(done)
		}
	}
	return finish(nil)
}

func (r *Runner) measureSize(ctx context.Context, rng *rand.Rand, n, m int, algos []multiply.Algorithm) (_ map[string]time.Duration, err error) {
	ctx, span := otel.Tracer("harness").Start(ctx, "MeasureSize")
	span.SetAttributes(attribute.Int("n", n), attribute.Int("pairs", m))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	pairs := GeneratePairs(rng, n, m)
	averages := make(map[string]time.Duration, len(algos))
	var reference [][]multiply.Vector
	if r.Verify {
		reference = make([][]multiply.Vector, len(algos))
	}

	for ai, algo := range algos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var products []multiply.Vector
		if r.Verify {
			products = make([]multiply.Vector, len(pairs))
		}

		start := time.Now()
		for pi, p := range pairs {
			product, err := algo.Product(p.A, p.B, r.Options)
			if err != nil {
				return nil, apperrors.MultiplicationError{Algorithm: algo.Name(), Size: n, Cause: err}
			}
			if products != nil {
				products[pi] = product
			}
		}
		elapsed := time.Since(start)
		if len(pairs) > 0 {
			elapsed /= time.Duration(len(pairs))
		}
		averages[algo.Name()] = elapsed

		if r.Verify {
			reference[ai] = products
			for pi := range pairs {
				if !products[pi].Equal(reference[0][pi]) {
					return nil, fmt.Errorf("%w: %s and %s at n=%d, pair %d",
						ErrMismatch, algos[0].Name(), algo.Name(), n, pi)
				}
			}
		}
	}
	return averages, nil
}
