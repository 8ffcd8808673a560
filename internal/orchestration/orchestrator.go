package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/progress"
)

// ProgressBufferMultiplier sizes the progress channel per task.
const ProgressBufferMultiplier = 5

// ExecuteMultiplications runs every multiplier on (a, b) concurrently and
// returns one result per multiplier, in input order. Failures are recorded
// in the result rather than aborting the others.
func ExecuteMultiplications(ctx context.Context, multipliers []multiply.Multiplier, a, b multiply.Vector, opts multiply.Options, reporter ProgressReporter, out io.Writer) []MultiplicationResult {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	results := make([]MultiplicationResult, len(multipliers))
	progressChan := make(chan progress.ProgressUpdate, max(1, len(multipliers))*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	var g errgroup.Group
	for i, m := range multipliers {
		report := progress.NewChannelCallback(progressChan, i)
		g.Go(func() error {
			report(0)
			start := time.Now()
			product, err := m.Multiply(ctx, a, b, opts)
			if err != nil {
				err = apperrors.MultiplicationError{Algorithm: m.Name(), Size: len(a), Cause: err}
			}
			results[i] = MultiplicationResult{Name: m.Name(), Product: product, Duration: time.Since(start), Err: err}
			report(1)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()
	return results
}

// AnalyzeComparisonResults orders results (successes first, then fastest
// first), presents the table, and returns the exit code: success when all
// successful products agree, ExitErrorMismatch when any two differ, or the
// presenter's code for the first error when nothing succeeded.
func AnalyzeComparisonResults(results []MultiplicationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var reference *MultiplicationResult
	var firstError error
	for i := range results {
		switch {
		case results[i].Err != nil && firstError == nil:
			firstError = results[i].Err
		case results[i].Err == nil && reference == nil:
			reference = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if reference == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Product.Equal(reference.Product) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s returned different products.\n", reference.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	if opts.A != nil && opts.B != nil {
		if err := multiply.CheckProduct(opts.A, opts.B, reference.Product); errors.Is(err, multiply.ErrProductMismatch) {
			fmt.Fprintf(out, "Note: some coefficients overflowed int64; the product is exact modulo 2^64 only.\n")
		}
	}
	presenter.PresentResult(*reference, opts, out)
	return apperrors.ExitSuccess
}
