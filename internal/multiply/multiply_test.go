package multiply

import (
	"errors"
	"math"
	"testing"
)

type algoFunc func(a, b Vector) (Vector, error)

func algorithms() map[string]algoFunc {
	return map[string]algoFunc{
		"Direct":    Direct,
		"Karatsuba": Karatsuba,
		"KaratsubaCutoff4": func(a, b Vector) (Vector, error) {
			return KaratsubaWithCutoff(a, b, 4)
		},
	}
}

func TestKnownProducts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Vector
		want Vector
	}{
		{"empty", Vector{}, Vector{}, Vector{}},
		{"single digit", Vector{7}, Vector{6}, Vector{42, 0}},
		{"single zero", Vector{0}, Vector{9}, Vector{0, 0}},
		{"two digits", Vector{1, 2}, Vector{3, 4}, Vector{3, 10, 8, 0}},
		{"123 x 456", Vector{1, 2, 3}, Vector{4, 5, 6}, Vector{4, 13, 28, 27, 18, 0}},
		{"negative digits", Vector{-1, 2}, Vector{3, -4}, Vector{-3, 10, -8, 0}},
		{"odd length five", Vector{1, 1, 1, 1, 1}, Vector{1, 1, 1, 1, 1}, Vector{1, 2, 3, 4, 5, 4, 3, 2, 1, 0}},
		{"zero vector", Vector{0, 0, 0, 0}, Vector{5, -3, 8, 1}, Vector{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for name, algo := range algorithms() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				got, err := algo(tt.a, tt.b)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !got.Equal(tt.want) {
					t.Errorf("got %v, want %v", got, tt.want)
				}
				if len(got) != 2*len(tt.a) {
					t.Errorf("len = %d, want %d", len(got), 2*len(tt.a))
				}
			})
		}
	}
}

func TestEmptyInputReturnsNonNil(t *testing.T) {
	t.Parallel()
	for name, algo := range algorithms() {
		got, err := algo(nil, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: got %#v, want empty non-nil vector", name, got)
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	t.Parallel()
	for name, algo := range algorithms() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := algo(Vector{1, 2, 3}, Vector{1, 2})
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("expected ErrLengthMismatch, got %v", err)
			}
			var lm *LengthMismatchError
			if !errors.As(err, &lm) {
				t.Fatalf("expected *LengthMismatchError, got %T", err)
			}
			if lm.Left != 3 || lm.Right != 2 {
				t.Errorf("lengths = (%d, %d), want (3, 2)", lm.Left, lm.Right)
			}
		})
	}
}

func TestOddLengthSplits(t *testing.T) {
	t.Parallel()
	for _, n := range []int{3, 5, 7, 9, 11, 13, 15, 17, 31, 33, 63, 65} {
		a := make(Vector, n)
		b := make(Vector, n)
		for i := range a {
			a[i] = int64(i*7%19 - 9)
			b[i] = int64(i*11%23 - 11)
		}
		want, _ := Direct(a, b)
		got, err := Karatsuba(a, b)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !got.Equal(want) {
			t.Errorf("n=%d: karatsuba %v != direct %v", n, got, want)
		}
	}
}

func TestInputsAreNotMutated(t *testing.T) {
	t.Parallel()
	a := Vector{9, -8, 7, -6, 5, -4, 3}
	b := Vector{1, 2, 3, 4, 5, 6, 7}
	aCopy, bCopy := a.Clone(), b.Clone()

	for name, algo := range algorithms() {
		if _, err := algo(a, b); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !a.Equal(aCopy) || !b.Equal(bCopy) {
			t.Fatalf("%s mutated its operands", name)
		}
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	a := Vector{3, 1, 4, 1, 5, 9, 2, 6, 5}
	b := Vector{2, 7, 1, 8, 2, 8, 1, 8, 2}
	for name, algo := range algorithms() {
		first, _ := algo(a, b)
		for i := 0; i < 5; i++ {
			again, _ := algo(a, b)
			if !again.Equal(first) {
				t.Fatalf("%s returned %v then %v", name, first, again)
			}
		}
	}
}

// Karatsuba and Direct agree modulo 2^64 even when coefficients wrap.
func TestWraparoundAgreement(t *testing.T) {
	t.Parallel()
	a := Vector{math.MaxInt64, math.MinInt64, math.MaxInt64, -1, 3}
	b := Vector{math.MaxInt64, math.MaxInt64, math.MinInt64, 2, -5}

	want, _ := Direct(a, b)
	got, err := Karatsuba(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("karatsuba %v != direct %v under wraparound", got, want)
	}
	if err := CheckProduct(a, b, got); !errors.Is(err, ErrProductMismatch) {
		t.Errorf("CheckProduct on overflowed product: got %v, want ErrProductMismatch", err)
	}
}

func TestAddHalvesRejectsMalformedSplit(t *testing.T) {
	t.Parallel()
	if _, err := addHalves(Vector{1, 2}, Vector{3}); !errors.Is(err, ErrMalformedSplit) {
		t.Errorf("low longer than high: got %v", err)
	}
	if _, err := addHalves(Vector{1}, Vector{1, 2, 3}); !errors.Is(err, ErrMalformedSplit) {
		t.Errorf("high two longer than low: got %v", err)
	}
	sum, err := addHalves(Vector{1, 2}, Vector{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Equal(Vector{11, 22, 30}) {
		t.Errorf("sum = %v", sum)
	}
}

func TestCheckProduct(t *testing.T) {
	t.Parallel()
	a, b := Vector{1, 2, 3}, Vector{4, 5, 6}
	tests := []struct {
		name    string
		product Vector
		wantErr error
	}{
		{"correct", Vector{4, 13, 28, 27, 18, 0}, nil},
		{"wrong coefficient", Vector{4, 13, 28, 27, 19, 0}, ErrProductMismatch},
		{"carried form is not the convolution", Vector{8, 8, 0, 6, 5, 0}, ErrProductMismatch},
		{"short", Vector{4, 13, 28}, ErrProductMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckProduct(a, b, tt.product)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckProduct() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := CheckProduct(Vector{}, Vector{}, Vector{}); err != nil {
		t.Errorf("empty product: %v", err)
	}
	if err := CheckProduct(Vector{1}, Vector{1, 2}, Vector{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatched operands: %v", err)
	}
}

// The running time grows faster for the direct convolution than for
// Karatsuba: growing n eightfold should cost roughly 64x vs 27x.
func TestScalingShape(t *testing.T) {
	if testing.Short() {
		t.Skip("timing-sensitive test skipped in short mode")
	}

	operand := func(n int) Vector {
		v := make(Vector, n)
		for i := range v {
			v[i] = int64(i%17) - 8
		}
		return v
	}
	small, large := operand(256), operand(2048)

	directRatio := timeRatio(func(v Vector) { _, _ = Direct(v, v) }, small, large)
	karatsubaRatio := timeRatio(func(v Vector) { _, _ = Karatsuba(v, v) }, small, large)

	t.Logf("direct growth %.1fx, karatsuba growth %.1fx", directRatio, karatsubaRatio)
	if karatsubaRatio >= directRatio {
		t.Errorf("karatsuba grew %.1fx, not slower than direct (%.1fx) over an 8x size increase",
			karatsubaRatio, directRatio)
	}
}

func timeRatio(run func(Vector), small, large Vector) float64 {
	measure := func(v Vector) float64 {
		res := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				run(v)
			}
		})
		return float64(res.NsPerOp())
	}
	s := measure(small)
	if s == 0 {
		return 0
	}
	return measure(large) / s
}
