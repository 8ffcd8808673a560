package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/mulbench/internal/config"
	"github.com/agbru/mulbench/internal/progress"
)

// MockSpinner records calls; suffix reads are guarded because the
// display loop writes from its own goroutine.
type MockSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffixes = append(m.suffixes, suffix)
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

// DisplayProgress tests swap the package-level spinner factory, so they
// do not run in parallel.
func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate)
	go func() {
		progressChan <- progress.ProgressUpdate{Index: 0, Value: 0.5}
		progressChan <- progress.ProgressUpdate{Index: 1, Value: 1}
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 2, io.Discard)
	wg.Wait()

	mockS.mu.Lock()
	defer mockS.mu.Unlock()
	if !mockS.started || !mockS.stopped {
		t.Errorf("started=%v stopped=%v, want both", mockS.started, mockS.stopped)
	}
	last := mockS.suffixes[len(mockS.suffixes)-1]
	if !strings.Contains(last, "100.00%") || !strings.Contains(last, "2 algorithms") {
		t.Errorf("final suffix = %q", last)
	}
}

func TestDisplayProgress_ZeroTasks(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{Index: 0, Value: 1}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
	if mockS.started {
		t.Error("spinner should not start without tasks")
	}
}

func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cfg      config.AppConfig
		contains []string
	}{
		{"sweep", config.AppConfig{MinSize: 10, MaxSize: 500, Timeout: time.Minute, Cutoff: 32}, []string{"Sweeping n from", "500", "CPU features:", "cutoff: "}},
		{"compare", config.AppConfig{A: "1,2", B: "3,4", Timeout: time.Minute}, []string{"Multiplying one pair", "logical processors"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			PrintExecutionConfig(tt.cfg, &buf)
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output missing %q:\n%s", s, buf.String())
				}
			}
		})
	}
}

func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"Karatsuba"}, "Single run"},
		{[]string{"Naive", "Karatsuba"}, "Comparison of"},
		{nil, "no algorithm selected"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		PrintExecutionMode(tt.names, &buf)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("PrintExecutionMode(%v) = %q, missing %q", tt.names, buf.String(), tt.want)
		}
	}
}
