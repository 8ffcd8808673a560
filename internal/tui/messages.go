package tui

import (
	"time"

	"github.com/agbru/mulbench/internal/harness"
)

// TickMsg drives periodic sampling of runtime and host stats.
type TickMsg time.Time

// FrameMsg advances the chart replay by one sample. Generation discards
// frames from a replay that was restarted.
type FrameMsg struct {
	Generation uint64
}

// SampleMsg carries the averages measured at one size.
type SampleMsg struct {
	Sample harness.Sample
}

// ProgressMsg reports the aggregated sweep progress.
type ProgressMsg struct {
	Index           int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// MemStatsMsg is a runtime.MemStats reading.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg is a host and process reading from sysmon.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	ProcessRSS uint64
}

// RunCompleteMsg is sent when the sweep returns.
type RunCompleteMsg struct {
	Results *harness.Results
	Err     error
}

// ContextCancelledMsg is sent when the parent context ends.
type ContextCancelledMsg struct {
	Err error
}
