// Package sysmon samples host and process resource usage for the live
// dashboard and records the CPU model in calibration profiles.
package sysmon

import (
	"os"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats is one snapshot of resource usage. Percentages are in [0, 100];
// fields that could not be read are left at zero.
type Stats struct {
	CPUPercent     float64 // host, all cores
	MemPercent     float64 // host
	ProcessCPU     float64 // this process, may exceed 100 on several cores
	ProcessRSS     uint64
	ProcessThreads int32
}

// Sampler reads Stats. CPU figures are deltas since the previous call, so
// the first sample after construction reports zero CPU.
type Sampler struct {
	mu   sync.Mutex
	proc *process.Process
}

// NewSampler returns a sampler bound to the current process. Host stats
// remain available if the process handle cannot be opened.
func NewSampler() *Sampler {
	s := &Sampler{}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		s.proc = p
		_, _ = p.Percent(0)
	}
	_, _ = cpu.Percent(0, false)
	return s
}

// Sample collects a snapshot.
func (s *Sampler) Sample() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		st.CPUPercent = clampPercent(pcts[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		st.MemPercent = clampPercent(vm.UsedPercent)
	}
	if s.proc != nil {
		if pct, err := s.proc.Percent(0); err == nil {
			st.ProcessCPU = max(pct, 0)
		}
		if mi, err := s.proc.MemoryInfo(); err == nil && mi != nil {
			st.ProcessRSS = mi.RSS
		}
		if n, err := s.proc.NumThreads(); err == nil {
			st.ProcessThreads = n
		}
	}
	return st
}

var defaultSampler = sync.OnceValue(NewSampler)

// Sample uses a process-wide Sampler.
func Sample() Stats { return defaultSampler().Sample() }

// CPUModel returns the model name of the first CPU, or "" when the
// platform does not expose it.
func CPUModel() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return ""
	}
	return strings.TrimSpace(infos[0].ModelName)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
