package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/mulbench/internal/harness"
	"github.com/agbru/mulbench/internal/orchestration"
	"github.com/agbru/mulbench/internal/progress"
)

// programRef survives the model copies bubbletea makes on every Update so
// that producer goroutines can reach the running program.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program; it is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter drains harness progress into ProgressMsg values.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numTasks int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numTasks)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}
	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			Index:           ap.Index,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
		})
	}
}

// sampleForwarder returns a harness.Runner OnSample hook.
func sampleForwarder(ref *programRef) func(harness.Sample) {
	return func(s harness.Sample) {
		ref.Send(SampleMsg{Sample: s})
	}
}
