package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/progress"
)

// MultiplicationResult is the outcome of one multiplier on one pair.
type MultiplicationResult struct {
	Name     string
	Product  multiply.Vector // nil when Err is set
	Duration time.Duration
	Err      error
}

// PresentationOptions carries what the presenter needs besides the results.
type PresentationOptions struct {
	A, B    multiply.Vector
	Verbose bool
}

// ProgressReporter renders progress updates until progressChan is closed,
// then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTasks int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTasks int, out io.Writer)

func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTasks int, out io.Writer) {
	f(wg, progressChan, numTasks, out)
}

// NullProgressReporter drains updates silently. Used in quiet mode.
type NullProgressReporter struct{}

func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ErrorHandler turns a failure into a printed status and an exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// ResultPresenter displays comparison outcomes.
type ResultPresenter interface {
	ErrorHandler
	PresentComparisonTable(results []MultiplicationResult, out io.Writer)
	PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
