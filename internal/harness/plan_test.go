package harness

import (
	"slices"
	"testing"
)

func TestLinspace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		lo, hi, k int
		want      []int
	}{
		{"empty", 10, 100, 0, nil},
		{"single", 10, 100, 1, []int{10}},
		{"endpoints", 10, 100, 2, []int{10, 100}},
		{"even", 10, 100, 4, []int{10, 40, 70, 100}},
		{"truncates", 10, 10000, 4, []int{10, 3340, 6670, 10000}},
		{"narrow repeats", 1, 2, 4, []int{1, 1, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Linspace(tt.lo, tt.hi, tt.k); !slices.Equal(got, tt.want) {
				t.Errorf("Linspace(%d, %d, %d) = %v, want %v", tt.lo, tt.hi, tt.k, got, tt.want)
			}
		})
	}
}

func TestNewPlan_Deterministic(t *testing.T) {
	t.Parallel()
	cfg := PlanConfig{MinSize: 10, MaxSize: 10000, Seed: 42}
	p1, err := NewPlan(cfg)
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := NewPlan(cfg)

	if !slices.Equal(p1.Sizes, p2.Sizes) || p1.Pairs != p2.Pairs {
		t.Error("equal seeds should give equal plans")
	}
	if k := len(p1.Sizes); k < MinRandomSteps || k > MaxRandomSteps {
		t.Errorf("steps = %d, want within [%d, %d]", k, MinRandomSteps, MaxRandomSteps)
	}
	if p1.Pairs < MinRandomPairs || p1.Pairs > MaxRandomPairs {
		t.Errorf("pairs = %d, want within [%d, %d]", p1.Pairs, MinRandomPairs, MaxRandomPairs)
	}
	if p1.Sizes[0] != 10 || p1.Sizes[len(p1.Sizes)-1] != 10000 {
		t.Errorf("sizes should span [10, 10000], got %d..%d", p1.Sizes[0], p1.Sizes[len(p1.Sizes)-1])
	}
}

func TestNewPlan_ExplicitValues(t *testing.T) {
	t.Parallel()
	p, err := NewPlan(PlanConfig{MinSize: 1, MaxSize: 9, Steps: 5, Pairs: 3, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(p.Sizes, []int{1, 3, 5, 7, 9}) || p.Pairs != 3 || p.Seed != 7 {
		t.Errorf("unexpected plan %+v", p)
	}
}

func TestNewPlan_ZeroSeedIsRecorded(t *testing.T) {
	t.Parallel()
	p, err := NewPlan(PlanConfig{MinSize: 1, MaxSize: 2, Steps: 1, Pairs: 1})
	if err != nil {
		t.Fatal(err)
	}
	if p.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
}

func TestNewPlan_Invalid(t *testing.T) {
	t.Parallel()
	for _, cfg := range []PlanConfig{
		{MinSize: 0, MaxSize: 10},
		{MinSize: 10, MaxSize: 5},
		{MinSize: 1, MaxSize: 5, Steps: -1},
		{MinSize: 1, MaxSize: 5, Pairs: -1},
	} {
		if _, err := NewPlan(cfg); err == nil {
			t.Errorf("NewPlan(%+v) should fail", cfg)
		}
	}
}

func TestGeneratePairs(t *testing.T) {
	t.Parallel()
	const n, m = 50, 12
	pairs := GeneratePairs(pairRand(1), n, m)
	if len(pairs) != m {
		t.Fatalf("got %d pairs, want %d", len(pairs), m)
	}
	for _, p := range pairs {
		if p.A.Len() != n || p.B.Len() != n {
			t.Fatalf("pair lengths %d/%d, want %d", p.A.Len(), p.B.Len(), n)
		}
		for _, v := range append(p.A.Clone(), p.B...) {
			if v < -2*n || v > 2*n {
				t.Fatalf("entry %d outside [-%d, %d]", v, 2*n, 2*n)
			}
		}
	}

	again := GeneratePairs(pairRand(1), n, m)
	if !again[m-1].B.Equal(pairs[m-1].B) {
		t.Error("generation should be reproducible for a given seed")
	}
}
