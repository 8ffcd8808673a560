package harness

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Ranges drawn from when PlanConfig leaves Steps or Pairs at zero.
const (
	MinRandomSteps = 100
	MaxRandomSteps = 200
	MinRandomPairs = 10
	MaxRandomPairs = 20
)

// PlanConfig describes the sweep requested by the user. Zero Steps, Pairs
// or Seed are filled in by NewPlan.
type PlanConfig struct {
	MinSize int
	MaxSize int
	Steps   int
	Pairs   int
	Seed    uint64
}

// Plan is a fully resolved sweep.
type Plan struct {
	Sizes []int  `json:"sizes"`
	Pairs int    `json:"pairs"`
	Seed  uint64 `json:"seed"`
}

// NewPlan resolves cfg into a Plan. Random choices come from a PCG seeded
// with cfg.Seed, so equal configs always produce equal plans. A zero seed
// is replaced by one derived from the clock and recorded in the plan.
func NewPlan(cfg PlanConfig) (*Plan, error) {
	if cfg.MinSize < 1 {
		return nil, fmt.Errorf("minimum size must be at least 1 (got %d)", cfg.MinSize)
	}
	if cfg.MaxSize < cfg.MinSize {
		return nil, fmt.Errorf("maximum size %d is below minimum size %d", cfg.MaxSize, cfg.MinSize)
	}
	if cfg.Steps < 0 || cfg.Pairs < 0 {
		return nil, fmt.Errorf("steps and pairs cannot be negative")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := planRand(seed)

	steps := cfg.Steps
	if steps == 0 {
		steps = MinRandomSteps + rng.IntN(MaxRandomSteps-MinRandomSteps+1)
	}
	pairs := cfg.Pairs
	if pairs == 0 {
		pairs = MinRandomPairs + rng.IntN(MaxRandomPairs-MinRandomPairs+1)
	}

	return &Plan{
		Sizes: Linspace(cfg.MinSize, cfg.MaxSize, steps),
		Pairs: pairs,
		Seed:  seed,
	}, nil
}

// Linspace returns k sizes evenly spaced over [lo, hi], both ends
// included, truncating each point to an integer. Narrow ranges may repeat
// a size.
func Linspace(lo, hi, k int) []int {
	switch {
	case k <= 0:
		return nil
	case k == 1:
		return []int{lo}
	}
	sizes := make([]int, k)
	step := float64(hi-lo) / float64(k-1)
	for i := range sizes {
		sizes[i] = lo + int(float64(i)*step)
	}
	sizes[k-1] = hi
	return sizes
}

// planRand and pairRand use distinct streams of the same seed so that
// changing Steps does not shift the generated operands.
func planRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x706c616e))
}

func pairRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x70616972))
}
