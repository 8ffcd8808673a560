package tui

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func TestHistory_PushAndLimit(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)
	if h.Last() != 0 || h.Len() != 0 {
		t.Error("new history should be empty")
	}
	for _, v := range []float64{1, 2, 3, 4} {
		h.Push(v)
	}
	if !slices.Equal(h.Values(), []float64{2, 3, 4}) {
		t.Errorf("Values = %v, want [2 3 4]", h.Values())
	}
	if h.Last() != 4 {
		t.Errorf("Last = %v", h.Last())
	}

	h.SetLimit(2)
	if !slices.Equal(h.Values(), []float64{3, 4}) {
		t.Errorf("after SetLimit(2): %v", h.Values())
	}
	h.SetLimit(0)
	if h.Len() != 1 {
		t.Errorf("limit is at least 1, got %d samples", h.Len())
	}
	h.Reset()
	if h.Len() != 0 {
		t.Error("Reset should empty the history")
	}
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"bounds", []float64{0, 100}, "▁█"},
		{"clamped", []float64{-10, 150}, "▁█"},
		{"mid", []float64{50}, "▄"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderSparkline(tt.values); got != tt.want {
				t.Errorf("RenderSparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestRenderBraillePlot_Dimensions(t *testing.T) {
	t.Parallel()
	plain := lipgloss.NewStyle()
	series := []PlotSeries{{
		Points: []Point{{X: 10, Y: 0}, {X: 100, Y: 1}},
		Style:  plain,
	}}
	lines := RenderBraillePlot(series, 10, 100, 1, 20, 4)
	if len(lines) != 4 {
		t.Fatalf("got %d rows, want 4", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 20 {
			t.Errorf("row %d has %d cells, want 20", i, n)
		}
	}
	// The segment runs from the bottom-left to the top-right corner.
	if r, _ := utf8.DecodeRuneInString(lines[3]); r == 0x2800 {
		t.Error("bottom-left cell should be set")
	}
	if r, _ := utf8.DecodeLastRuneInString(lines[0]); r == 0x2800 {
		t.Error("top-right cell should be set")
	}
}

func TestRenderBraillePlot_EmptyAndDegenerate(t *testing.T) {
	t.Parallel()
	if RenderBraillePlot(nil, 0, 1, 1, 0, 3) != nil {
		t.Error("zero width should render nothing")
	}
	lines := RenderBraillePlot([]PlotSeries{{Points: []Point{{X: 5, Y: 0}}}}, 5, 5, 0, 4, 2)
	joined := strings.Join(lines, "")
	if strings.Count(joined, string(rune(0x2800))) != 7 {
		t.Errorf("a single point should set exactly one cell: %q", joined)
	}
}

func TestWalkLine_Endpoints(t *testing.T) {
	t.Parallel()
	var pts [][2]int
	walkLine(0, 0, 3, -2, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	if pts[0] != [2]int{0, 0} || pts[len(pts)-1] != [2]int{3, -2} {
		t.Errorf("walk = %v", pts)
	}
	if len(pts) != 4 {
		t.Errorf("a 3x2 line should visit 4 dots, got %d", len(pts))
	}
}
