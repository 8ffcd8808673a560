package format

import (
	"fmt"
	"strings"
	"time"
)

const maxETA = 24 * time.Hour

// ProgressState averages the progress of several concurrent tasks. It is
// not safe for concurrent use; a single display goroutine owns it.
type ProgressState struct {
	progresses []float64
}

func NewProgressState(numTasks int) *ProgressState {
	if numTasks < 0 {
		numTasks = 0
	}
	return &ProgressState{progresses: make([]float64, numTasks)}
}

// Update records value, clamped to [0, 1], for task index. Out of range
// indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = clamp01(value)
}

func (ps *ProgressState) CalculateAverage() float64 {
	if len(ps.progresses) == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(len(ps.progresses))
}

// ProgressWithETA adds a smoothed completion-rate estimate to a
// ProgressState.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	rate         float64 // progress per second, exponentially smoothed
}

func NewProgressWithETA(numTasks int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numTasks),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records a progress value and returns the new average along
// with the estimated remaining time (0 while no estimate is available).
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	return p.observe(time.Now())
}

func (p *ProgressWithETA) observe(now time.Time) (float64, time.Duration) {
	progress := p.CalculateAverage()
	elapsed := now.Sub(p.startTime)

	if elapsed < 100*time.Millisecond || progress <= 0.001 {
		p.lastUpdate, p.lastProgress = now, progress
		return progress, 0
	}

	if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0.05 {
		if delta := progress - p.lastProgress; delta > 0 {
			if p.rate > 0 {
				p.rate = 0.7*p.rate + 0.3*(delta/dt)
			} else {
				p.rate = progress / elapsed.Seconds()
			}
		}
		p.lastUpdate, p.lastProgress = now, progress
	}
	return progress, p.GetETA()
}

// GetETA estimates the remaining time from the current smoothed rate.
func (p *ProgressWithETA) GetETA() time.Duration {
	progress := p.CalculateAverage()
	if p.rate <= 0 || progress >= 1 {
		return 0
	}
	eta := time.Duration((1 - progress) / p.rate * float64(time.Second))
	return min(eta, maxETA)
}

// ProgressBar draws a bar of the given width using full and light shade
// blocks.
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(clamp01(progress) * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatProgressBarWithETA renders e.g. " 45.00% [████░░░░] ETA: 2m30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", clamp01(progress)*100, ProgressBar(progress, width), FormatETA(eta))
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
