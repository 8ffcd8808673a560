package orchestration

import (
	"time"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/progress"
)

// ProgressAggregator folds per-task updates into an average and an ETA.
// Both the CLI reporter and the dashboard use it.
type ProgressAggregator struct {
	state    *format.ProgressWithETA
	numTasks int
}

// NewProgressAggregator returns nil when numTasks <= 0.
func NewProgressAggregator(numTasks int) *ProgressAggregator {
	if numTasks <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(numTasks), numTasks: numTasks}
}

// AggregatedProgress is the view after applying one update.
type AggregatedProgress struct {
	Index           int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.Index, update.Value)
	return AggregatedProgress{Index: update.Index, Value: update.Value, AverageProgress: avg, ETA: eta}
}

func (a *ProgressAggregator) CalculateAverage() float64 { return a.state.CalculateAverage() }

func (a *ProgressAggregator) GetETA() time.Duration { return a.state.GetETA() }

func (a *ProgressAggregator) NumTasks() int { return a.numTasks }

// IsMultiTask reports whether more than one task feeds the aggregate.
func (a *ProgressAggregator) IsMultiTask() bool { return a.numTasks > 1 }

// DrainChannel discards updates until the channel is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
