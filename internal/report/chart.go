package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/agbru/mulbench/internal/harness"
)

// ChartOptions controls the static HTML chart.
type ChartOptions struct {
	Title  string
	Width  string
	Height string
}

// DefaultChartOptions returns the options used by Export.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:  "Multiplication Algorithm Comparison",
		Width:  "1200px",
		Height: "600px",
	}
}

// ErrNoSamples is returned when there is nothing to draw.
var ErrNoSamples = errors.New("report: results contain no samples")

// RenderStaticChart writes an HTML page plotting the average time per call
// of every algorithm against the input size.
func RenderStaticChart(w io.Writer, r *harness.Results, o ChartOptions) error {
	if r == nil || r.Len() == 0 {
		return ErrNoSamples
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: o.Width, Height: o.Height}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: subtitle(r),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Left: "left", Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Input size (n)",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Type: "dashed"},
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Execution time (seconds)",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Type: "dashed"},
			},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
	)

	for i, name := range r.Algorithms {
		st := styleFor(name, i)
		lineType := "solid"
		if st.Dashed {
			lineType = "dashed"
		}
		line.AddSeries(name, lineItems(r.Sizes, r.Seconds(name)),
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
				Symbol:     st.Symbol,
				SymbolSize: 6,
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: st.Hex, Type: lineType, Width: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: st.Hex}),
		)
	}
	return line.Render(w)
}

func lineItems(sizes []int, seconds []float64) []opts.LineData {
	items := make([]opts.LineData, len(seconds))
	for i, s := range seconds {
		items[i] = opts.LineData{Value: []any{sizes[i], s}}
	}
	return items
}

func subtitle(r *harness.Results) string {
	s := fmt.Sprintf("%d sizes, %d pairs per size, seed %d", r.Len(), r.Pairs, r.Seed)
	if r.Cutoff > 1 {
		s += fmt.Sprintf(", cutoff %d", r.Cutoff)
	}
	if !r.Complete {
		s += " (interrupted)"
	}
	return s
}
