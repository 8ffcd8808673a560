package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/mulbench/internal/logging"
	"github.com/agbru/mulbench/internal/metrics"
)

const metricsShutdownTimeout = 2 * time.Second

// setupLifecycle bounds ctx by the timeout and cancels it on SIGINT or
// SIGTERM. The returned function releases both.
func setupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// startMetrics serves Prometheus metrics on addr for the lifetime of the
// run. An empty addr disables the exporter. The returned stop function is
// always safe to call.
func startMetrics(addr string, logger logging.Logger) (stop func(), err error) {
	if addr == "" {
		return func() {}, nil
	}
	exp := metrics.NewExporter(addr)
	bound, err := exp.Start()
	if err != nil {
		return func() {}, err
	}
	logger.Info("metrics exporter listening", logging.String("addr", bound))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := exp.Shutdown(ctx); err != nil {
			logger.Warn("metrics exporter shutdown", logging.Err(err))
		}
	}, nil
}
