package sysmon

import (
	"testing"
)

func TestSampler_ReturnsValidRanges(t *testing.T) {
	t.Parallel()
	s := NewSampler()
	for i := 0; i < 2; i++ {
		st := s.Sample()
		if st.CPUPercent < 0 || st.CPUPercent > 100 {
			t.Errorf("CPUPercent out of range: %f", st.CPUPercent)
		}
		if st.MemPercent < 0 || st.MemPercent > 100 {
			t.Errorf("MemPercent out of range: %f", st.MemPercent)
		}
		if st.ProcessCPU < 0 {
			t.Errorf("ProcessCPU negative: %f", st.ProcessCPU)
		}
	}
}

func TestSample_HostMemoryAndRSS(t *testing.T) {
	st := Sample()
	if st.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
	if st.ProcessRSS == 0 {
		t.Skip("process RSS not available on this platform")
	}
}

func TestClampPercent(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want float64 }{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{180, 100},
	}
	for _, tt := range tests {
		if got := clampPercent(tt.in); got != tt.want {
			t.Errorf("clampPercent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCPUModel_DoesNotPanic(t *testing.T) {
	t.Parallel()
	_ = CPUModel()
}

func TestCPUFeatures_NoDuplicates(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range CPUFeatures() {
		if seen[f] {
			t.Errorf("duplicate feature %q", f)
		}
		seen[f] = true
	}
	if HasWideVectors() && !seen["AVX2"] && !seen["SVE"] {
		t.Error("HasWideVectors without AVX2 or SVE in the feature list")
	}
}
