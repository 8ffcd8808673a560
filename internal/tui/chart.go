package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/harness"
)

// sysHistoryLimit bounds the CPU and memory sparklines.
const sysHistoryLimit = 120

// ChartModel plots the average time per call of every algorithm against
// the input size. The x range is fixed by the plan; the y range grows with
// the slowest sample seen. frame is the number of samples currently drawn:
// it follows the sweep live and restarts from zero on replay.
type ChartModel struct {
	algorithms []string
	sizes      []int
	series     map[string][]float64
	xMin, xMax int
	yMax       float64

	frame     int
	replaying bool
	frozen    bool

	averageProgress float64
	eta             time.Duration
	elapsed         time.Duration
	done            bool

	cpuHistory *History
	memHistory *History

	width  int
	height int
}

func NewChartModel(algorithms []string, xMin, xMax int) ChartModel {
	c := ChartModel{
		algorithms: algorithms,
		xMin:       xMin,
		xMax:       xMax,
		cpuHistory: NewHistory(sysHistoryLimit),
		memHistory: NewHistory(sysHistoryLimit),
	}
	c.clearSamples()
	return c
}

func (c *ChartModel) clearSamples() {
	c.sizes = nil
	c.series = make(map[string][]float64, len(c.algorithms))
	c.yMax = 0
	c.frame = 0
}

func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.cpuHistory.SetLimit(max(w-14, 1))
	c.memHistory.SetLimit(max(w-14, 1))
}

// AddSample records the averages for one size.
func (c *ChartModel) AddSample(s harness.Sample) {
	c.sizes = append(c.sizes, s.Size)
	for _, name := range c.algorithms {
		v := s.Averages[name].Seconds()
		c.series[name] = append(c.series[name], v)
		c.yMax = max(c.yMax, 1.1*v)
	}
	if !c.replaying && !c.frozen {
		c.frame = len(c.sizes)
	}
}

// SetFrozen stops the live view from following new samples. Unfreezing
// catches up unless a replay is running.
func (c *ChartModel) SetFrozen(frozen bool) {
	c.frozen = frozen
	if !frozen && !c.replaying {
		c.frame = len(c.sizes)
	}
}

// StartReplay rewinds the chart to its first frame. It reports false when
// there is nothing to replay.
func (c *ChartModel) StartReplay() bool {
	if len(c.sizes) == 0 {
		return false
	}
	c.frame = 0
	c.replaying = true
	return true
}

// Advance shows one more sample during a replay and reports whether the
// replay continues.
func (c *ChartModel) Advance() bool {
	if !c.replaying {
		return false
	}
	if c.frozen {
		return true
	}
	c.frame++
	if c.frame >= len(c.sizes) {
		c.frame = len(c.sizes)
		c.replaying = false
	}
	return c.replaying
}

func (c *ChartModel) Frame() int { return c.frame }
func (c *ChartModel) Replaying() bool { return c.replaying }

func (c *ChartModel) SetProgress(average float64, eta time.Duration) {
	c.averageProgress = average
	c.eta = eta
}

func (c *ChartModel) UpdateSysStats(cpuPct, memPct float64) {
	c.cpuHistory.Push(cpuPct)
	c.memHistory.Push(memPct)
}

func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	c.averageProgress = 1
}

func (c *ChartModel) Reset() {
	c.clearSamples()
	c.replaying = false
	c.frozen = false
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.cpuHistory.Reset()
	c.memHistory.Reset()
}

func (c ChartModel) View() string {
	innerW := max(c.width-4, 10)
	// title, legend, axis labels, progress bar, two sparklines
	plotRows := max(c.height-2-6, 2)
	yLabelW := 9

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Average time per call"))
	b.WriteString("  ")
	for _, name := range c.algorithms {
		b.WriteString(seriesStyle(name).Render("━ " + name))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	var plots []PlotSeries
	for _, name := range c.algorithms {
		values := c.series[name]
		points := make([]Point, 0, c.frame)
		for i := 0; i < c.frame && i < len(values); i++ {
			points = append(points, Point{X: float64(c.sizes[i]), Y: values[i]})
		}
		plots = append(plots, PlotSeries{Points: points, Style: seriesStyle(name)})
	}
	lines := RenderBraillePlot(plots, float64(c.xMin), float64(c.xMax), c.yMax, innerW-yLabelW, plotRows)
	for i, line := range lines {
		label := ""
		switch i {
		case 0:
			label = format.FormatSeconds(c.yMax)
		case len(lines) - 1:
			label = "0"
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%*s ", yLabelW-1, label)))
		b.WriteString(line)
		b.WriteString("\n")
	}

	axis := fmt.Sprintf("%s%s", format.FormatInt(c.xMin), spaces(innerW-yLabelW-len(format.FormatInt(c.xMin))-len(format.FormatInt(c.xMax))))
	b.WriteString(dimStyle.Render(spaces(yLabelW) + axis + format.FormatInt(c.xMax)))
	b.WriteString("\n")

	b.WriteString(c.renderProgressBar())
	b.WriteString("\n")
	b.WriteString(c.renderSysLines())

	return panelStyle.Width(c.width - 2).Height(c.height - 2).Render(b.String())
}

func (c ChartModel) renderProgressBar() string {
	barWidth := max(c.width-34, 10)
	pct := min(max(c.averageProgress, 0), 1)
	filled := int(pct * float64(barWidth))
	bar := chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	suffix := "ETA: " + format.FormatETA(c.eta)
	if c.done {
		suffix = "Done in " + format.FormatExecutionDuration(c.elapsed)
	}
	if c.replaying {
		suffix = fmt.Sprintf("Replay %d/%d", c.frame, len(c.sizes))
	}
	return fmt.Sprintf(" %s %5.1f%%  %s", bar, pct*100, metricValueStyle.Render(suffix))
}

func (c ChartModel) renderSysLines() string {
	cpu := fmt.Sprintf(" %s %s %s", metricLabelStyle.Render("CPU"),
		cpuSparklineStyle.Render(RenderSparkline(c.cpuHistory.Values())),
		metricValueStyle.Render(fmt.Sprintf("%.0f%%", c.cpuHistory.Last())))
	mem := fmt.Sprintf(" %s %s %s", metricLabelStyle.Render("MEM"),
		memSparklineStyle.Render(RenderSparkline(c.memHistory.Values())),
		metricValueStyle.Render(fmt.Sprintf("%.0f%%", c.memHistory.Last())))
	return cpu + "\n" + mem
}
