package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/metrics"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.MultiplicationResult{
		{Name: "Karatsuba", Product: multiply.Vector{3, 0}, Duration: 2 * time.Millisecond},
		{Name: "Naive", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()
	for _, s := range []string{"Comparison Summary", "Karatsuba", "Success", "Failure (boom)", "< 1µs"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	res := orchestration.MultiplicationResult{Name: "Naive", Product: multiply.Vector{81, 0}, Duration: time.Millisecond}
	CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{A: multiply.Vector{9}, B: multiply.Vector{9}}, &buf)
	if !strings.Contains(buf.String(), "a × b = [81, 0]") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if got := (CLIResultPresenter{}).HandleError(tt.err, time.Second, &buf); got != tt.want {
				t.Errorf("HandleError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComparisonEndToEnd(t *testing.T) {
	t.Parallel()
	factory := multiply.NewDefaultFactory()
	multipliers := []multiply.Multiplier{}
	for _, name := range factory.List() {
		m, err := factory.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		multipliers = append(multipliers, m)
	}
	a, b := multiply.Vector{1, 2, 3}, multiply.Vector{4, 5, 6}

	var buf bytes.Buffer
	results := orchestration.ExecuteMultiplications(context.Background(), multipliers, a, b, multiply.Options{Cutoff: 1}, orchestration.NullProgressReporter{}, &buf)
	code := orchestration.AnalyzeComparisonResults(results, orchestration.PresentationOptions{A: a, B: b}, CLIResultPresenter{}, &buf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code %d:\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "[4, 13, 28, 27, 18, 0]") {
		t.Errorf("product missing from output:\n%s", buf.String())
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemoryDelta{Allocated: 1536, PeakHeap: 2048, Mallocs: 12345, GCCycles: 2, GCPause: 1500 * time.Microsecond}, &buf)
	for _, s := range []string{"1.5 KiB", "2.0 KiB", "12,345", "1.50ms"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("output missing %q:\n%s", s, buf.String())
		}
	}
}
