package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/harness"
)

// MetricsModel shows the latest measurement next to runtime statistics.
type MetricsModel struct {
	algorithms []string
	last       harness.Sample
	hasSample  bool

	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	processRSS   uint64

	width  int
	height int
}

func NewMetricsModel(algorithms []string) MetricsModel {
	return MetricsModel{algorithms: algorithms}
}

func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *MetricsModel) UpdateSample(s harness.Sample) {
	m.last = s
	m.hasSample = true
}

func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

func (m *MetricsModel) UpdateProcess(rss uint64) {
	m.processRSS = rss
}

// Ratio returns Naive/Karatsuba for the latest sample, or 0 when either
// is missing.
func (m MetricsModel) Ratio() float64 {
	if !m.hasSample {
		return 0
	}
	n, k := m.last.Averages["Naive"], m.last.Averages["Karatsuba"]
	if n <= 0 || k <= 0 {
		return 0
	}
	return float64(n) / float64(k)
}

func (m MetricsModel) View() string {
	colWidth := max((m.width-6)/2, 20)
	var left, right []string

	size := "-"
	if m.hasSample {
		size = fmt.Sprintf("%s (%d/%d)", format.FormatInt(m.last.Size), m.last.Index+1, m.last.Total)
	}
	left = append(left, formatMetricCol("Size:", size, colWidth))
	for _, name := range m.algorithms {
		value := "-"
		if m.hasSample {
			value = format.FormatExecutionDuration(m.last.Averages[name])
			if m.last.Averages[name] < time.Microsecond {
				value = "< 1µs"
			}
		}
		left = append(left, formatMetricColStyled(name+":", value, seriesStyle(name), colWidth))
	}

	right = append(right,
		formatMetricCol("Ratio:", format.FormatRatio(m.Ratio()), colWidth),
		formatMetricCol("Heap:", format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapSys), colWidth),
		formatMetricCol("GC:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
	)
	if m.processRSS > 0 {
		right = append(right, formatMetricCol("RSS:", format.FormatBytes(m.processRSS), colWidth))
	}

	var rows strings.Builder
	for i := 0; i < max(len(left), len(right)); i++ {
		if i > 0 {
			rows.WriteString("\n")
		}
		l, r := "", ""
		if i < len(left) {
			l = left[i]
		} else {
			l = spaces(colWidth)
		}
		if i < len(right) {
			r = right[i]
		}
		rows.WriteString(l + r)
	}
	return panelStyle.Width(m.width - 2).Height(m.height - 2).Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	return formatMetricColStyled(label, value, metricValueStyle, colWidth)
}

func formatMetricColStyled(label, value string, style lipgloss.Style, colWidth int) string {
	cell := fmt.Sprintf(" %s %s", metricLabelStyle.Render(fmt.Sprintf("%-12s", label)), style.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += spaces(colWidth - visible)
	}
	return cell
}
