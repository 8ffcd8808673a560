package metrics

import (
	"runtime"
	"time"
)

// MemorySnapshot is a point-in-time reading of runtime.MemStats.
type MemorySnapshot struct {
	HeapAlloc    uint64 `json:"heap_alloc"`
	HeapSys      uint64 `json:"heap_sys"`
	Sys          uint64 `json:"sys"`
	TotalAlloc   uint64 `json:"total_alloc"`
	Mallocs      uint64 `json:"mallocs"`
	NumGC        uint32 `json:"num_gc"`
	PauseTotalNs uint64 `json:"pause_total_ns"`
}

// MemoryDelta summarizes allocation activity between two snapshots.
type MemoryDelta struct {
	Allocated uint64        `json:"allocated"`
	Mallocs   uint64        `json:"mallocs"`
	GCCycles  uint32        `json:"gc_cycles"`
	GCPause   time.Duration `json:"gc_pause"`
	PeakHeap  uint64        `json:"peak_heap"`
	SysGrowth int64         `json:"sys_growth"`
}

type MemoryCollector struct{}

func NewMemoryCollector() *MemoryCollector { return &MemoryCollector{} }

func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Delta computes the activity between before and after. PeakHeap is the
// larger of the two HeapAlloc readings.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated: sub(after.TotalAlloc, before.TotalAlloc),
		Mallocs:   sub(after.Mallocs, before.Mallocs),
		GCCycles:  after.NumGC - min(before.NumGC, after.NumGC),
		GCPause:   time.Duration(sub(after.PauseTotalNs, before.PauseTotalNs)),
		PeakHeap:  max(before.HeapAlloc, after.HeapAlloc),
		SysGrowth: int64(after.Sys) - int64(before.Sys),
	}
}

func sub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
