package report

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/mulbench/internal/harness"
)

func sampleResults() *harness.Results {
	return &harness.Results{
		Algorithms: []string{"Naive", "Karatsuba"},
		Sizes:      []int{10, 40, 70, 100},
		Series: map[string][]time.Duration{
			"Naive":     {time.Microsecond, 16 * time.Microsecond, 49 * time.Microsecond, 100 * time.Microsecond},
			"Karatsuba": {2 * time.Microsecond, 12 * time.Microsecond, 30 * time.Microsecond, 50 * time.Microsecond},
		},
		Pairs:    12,
		Seed:     7,
		Elapsed:  3 * time.Second,
		Complete: true,
	}
}

func TestRenderStaticChart(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := RenderStaticChart(&buf, sampleResults(), DefaultChartOptions()); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	for _, want := range []string{
		"Multiplication Algorithm Comparison",
		"Input size (n)",
		"Execution time (seconds)",
		"Naive",
		"Karatsuba",
		"#1f77b4",
		"#2ca02c",
		"dashed",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
}

func TestRenderAnimation(t *testing.T) {
	t.Parallel()
	r := sampleResults()
	var buf bytes.Buffer
	if err := RenderAnimation(&buf, r, DefaultAnimationOptions()); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("output is not a valid GIF: %v", err)
	}
	if len(anim.Image) != r.Len() {
		t.Fatalf("got %d frames, want %d", len(anim.Image), r.Len())
	}
	for i, d := range anim.Delay {
		if d != 5 {
			t.Errorf("frame %d delay = %d, want 5", i, d)
		}
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 640 || b.Dy() != 400 {
		t.Errorf("frame size = %v", b)
	}

	// Later frames draw more series pixels than earlier ones.
	naive := rgba("#1f77b4")
	count := func(i int) int {
		img := anim.Image[i]
		n := 0
		for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
			for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				if uint8(r>>8) == naive.R && uint8(g>>8) == naive.G && uint8(b>>8) == naive.B {
					n++
				}
			}
		}
		return n
	}
	if first, last := count(0), count(len(anim.Image)-1); last <= first {
		t.Errorf("naive pixels did not grow: first=%d last=%d", first, last)
	}
}

func TestRenderers_NoSamples(t *testing.T) {
	t.Parallel()
	empty := &harness.Results{}
	var buf bytes.Buffer
	if err := RenderStaticChart(&buf, empty, DefaultChartOptions()); !errors.Is(err, ErrNoSamples) {
		t.Errorf("chart err = %v", err)
	}
	if err := RenderAnimation(&buf, nil, DefaultAnimationOptions()); !errors.Is(err, ErrNoSamples) {
		t.Errorf("animation err = %v", err)
	}
	if err := Summary(&buf, empty); !errors.Is(err, ErrNoSamples) {
		t.Errorf("summary err = %v", err)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Summary(&buf, sampleResults()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Naive/Karatsuba", "0.50x", "2.00x", "4 sizes, 12 pairs per size, seed 7", "Ratio trend: +", "pulls ahead"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "interrupted") {
		t.Error("complete run reported as interrupted")
	}
	if strings.Contains(out, "cutoff") {
		t.Error("pure recursion should not mention a cutoff")
	}
}

func TestReportsMentionCutoff(t *testing.T) {
	t.Parallel()
	r := sampleResults()
	r.Cutoff = 32

	var summary bytes.Buffer
	if err := Summary(&summary, r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(summary.String(), "Karatsuba cutoff 32") {
		t.Errorf("summary missing cutoff:\n%s", summary.String())
	}

	if got := subtitle(r); !strings.Contains(got, "cutoff 32") {
		t.Errorf("subtitle = %q, want it to mention cutoff 32", got)
	}
	var chart bytes.Buffer
	if err := RenderStaticChart(&chart, r, DefaultChartOptions()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(chart.String(), "cutoff 32") {
		t.Error("chart HTML missing cutoff")
	}

	r.Cutoff = 1
	if got := subtitle(r); strings.Contains(got, "cutoff") {
		t.Errorf("subtitle = %q, cutoff 1 should not be shown", got)
	}
}

func TestSummaryRows(t *testing.T) {
	t.Parallel()
	if got := summaryRows(3, 15); len(got) != 3 {
		t.Errorf("short sweep rows = %v", got)
	}
	got := summaryRows(200, 15)
	if len(got) != 15 || got[0] != 0 || got[14] != 199 {
		t.Errorf("sampled rows = %v", got)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := Export(context.Background(), dir, sampleResults(), ExportOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{JSONFile, CSVFile, ChartFile, AnimationFile}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("path %d = %s, want %s", i, p, want[i])
		}
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty: %v", p, err)
		}
	}

	loaded, err := harness.LoadJSON(paths[0])
	if err != nil || loaded.Len() != 4 {
		t.Errorf("exported JSON unreadable: %v", err)
	}
}

func TestExport_SkipsDisabledArtifacts(t *testing.T) {
	t.Parallel()
	paths, err := Export(context.Background(), t.TempDir(), sampleResults(), ExportOptions{NoChart: true, NoAnimation: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Errorf("paths = %v, want JSON and CSV only", paths)
	}
}

func TestExport_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Export(ctx, t.TempDir(), sampleResults(), DefaultExportOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
