package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mulbench/internal/format"
)

// HeaderModel renders the top bar: title, version, plan and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	plan      string
	width     int
}

func NewHeaderModel(version, plan string) HeaderModel {
	return HeaderModel{startTime: time.Now(), version: version, plan: plan}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

func (h HeaderModel) View() string {
	titleText := "mulbench"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	row := titleStyle.Render(titleText) + pipe +
		dimStyle.Render(h.plan) + pipe +
		elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	gap := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(h.width).Render(row + spaces(gap))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
