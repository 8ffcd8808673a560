package multiply

//go:generate mockgen -source=multiplier.go -destination=mocks/mock_multiplier.go -package=mocks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mulbench_multiplications_total",
			Help: "The total number of vector multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mulbench_multiplication_duration_seconds",
			Help:    "The duration of vector multiplications in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"algorithm"},
	)
)

// Options tunes an algorithm without changing its result.
type Options struct {
	// Cutoff is the operand length at or below which Karatsuba hands the
	// sub-problem to the direct convolution. Values <= 1 disable it.
	Cutoff int
}

// Algorithm is a pure multiplication strategy. Implementations must be
// safe for concurrent use, must not modify their operands and must return
// a fresh vector of length 2n.
type Algorithm interface {
	// Name returns the display name of the algorithm (e.g. "Karatsuba").
	Name() string
	// Product multiplies two equal-length vectors.
	Product(a, b Vector, opts Options) (Vector, error)
}

// Multiplier is the instrumented entry point used by the orchestration
// layer. It adds cancellation checks, tracing and metrics around an
// Algorithm.
type Multiplier interface {
	// Multiply returns the convolution of a and b. The context is checked
	// before the work starts; the multiplication itself is not
	// interruptible.
	Multiply(ctx context.Context, a, b Vector, opts Options) (Vector, error)

	// Name returns the display name of the underlying algorithm.
	Name() string
}

// instrumentedMultiplier decorates an Algorithm with the cross-cutting
// concerns shared by every multiplier.
type instrumentedMultiplier struct {
	algo Algorithm
}

// NewMultiplier wraps algo in the instrumentation decorator. It panics if
// algo is nil.
func NewMultiplier(algo Algorithm) Multiplier {
	if algo == nil {
		panic("multiply: the Algorithm implementation cannot be nil")
	}
	return &instrumentedMultiplier{algo: algo}
}

func (m *instrumentedMultiplier) Name() string { return m.algo.Name() }

func (m *instrumentedMultiplier) Multiply(ctx context.Context, a, b Vector, opts Options) (product Vector, err error) {
	_, span := otel.Tracer("multiply").Start(ctx, "Multiply")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		name := m.algo.Name()
		span.SetAttributes(
			attribute.String("algorithm", name),
			attribute.Int("n", len(a)),
		)
		multiplicationsTotal.WithLabelValues(name, status).Inc()
		multiplicationDuration.WithLabelValues(name).Observe(duration)

		log.Debug().
			Str("algo", name).
			Int("n", len(a)).
			Float64("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.algo.Product(a, b, opts)
}
