package harness

import (
	"time"

	"github.com/agbru/mulbench/internal/metrics"
)

// Results holds the outcome of a sweep. Series maps an algorithm's display
// name to its average call duration at each entry of Sizes. A run that was
// interrupted keeps the sizes it completed and has Complete set to false.
type Results struct {
	Algorithms []string                   `json:"algorithms"`
	Sizes      []int                      `json:"sizes"`
	Series     map[string][]time.Duration `json:"series"`
	Pairs      int                        `json:"pairs"`
	Seed       uint64                     `json:"seed"`
	Cutoff     int                        `json:"cutoff"`
	Started    time.Time                  `json:"started"`
	Elapsed    time.Duration              `json:"elapsed"`
	Complete   bool                       `json:"complete"`
	Memory     metrics.MemoryDelta        `json:"memory"`
}

func newResults(plan *Plan, names []string, cutoff int) *Results {
	r := &Results{
		Algorithms: names,
		Sizes:      make([]int, 0, len(plan.Sizes)),
		Series:     make(map[string][]time.Duration, len(names)),
		Pairs:      plan.Pairs,
		Seed:       plan.Seed,
		Cutoff:     cutoff,
	}
	for _, name := range names {
		r.Series[name] = make([]time.Duration, 0, len(plan.Sizes))
	}
	return r
}

// Len returns the number of completed sizes.
func (r *Results) Len() int { return len(r.Sizes) }

// Seconds returns the series for name in seconds, or nil if unknown.
func (r *Results) Seconds(name string) []float64 {
	series, ok := r.Series[name]
	if !ok {
		return nil
	}
	out := make([]float64, len(series))
	for i, d := range series {
		out[i] = d.Seconds()
	}
	return out
}

// Max returns the largest average duration across all series.
func (r *Results) Max() time.Duration {
	var m time.Duration
	for _, series := range r.Series {
		for _, d := range series {
			m = max(m, d)
		}
	}
	return m
}

// Ratio returns num/den per size. Sizes where den measured zero yield 0.
func (r *Results) Ratio(num, den string) []float64 {
	a, b := r.Series[num], r.Series[den]
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if b[i] > 0 {
			out[i] = float64(a[i]) / float64(b[i])
		}
	}
	return out
}

// RatioTrend fits a least-squares line to Ratio(num, den) against size and
// returns its slope. A positive slope means num grows faster than den as
// the input size increases. Fewer than two distinct sizes give 0.
func (r *Results) RatioTrend(num, den string) float64 {
	ratios := r.Ratio(num, den)
	n := len(ratios)
	if n < 2 {
		return 0
	}
	var sx, sy, sxx, sxy float64
	for i, y := range ratios {
		x := float64(r.Sizes[i])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	fn := float64(n)
	denom := fn*sxx - sx*sx
	if denom == 0 {
		return 0
	}
	return (fn*sxy - sx*sy) / denom
}
