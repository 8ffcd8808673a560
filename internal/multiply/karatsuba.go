package multiply

// Karatsuba returns the uncarried convolution of a and b using the
// three-multiplication recursion, in Θ(n^log2(3)) time. The result is
// identical to Direct for every input.
//
// Each level splits the operands at mid = n/2 into a low half a[:mid] and a
// high half a[mid:], and computes
//
//	z0 = low1 × low2
//	z2 = high1 × high2
//	z1 = (low1 + high1) × (low2 + high2)
//
// When n is odd the low half is one shorter than the high half and is
// treated as if padded with a trailing zero for the sums. The halves are
// slice views of the operands, which are never modified.
func Karatsuba(a, b Vector) (Vector, error) {
	return KaratsubaWithCutoff(a, b, 1)
}

// KaratsubaWithCutoff is Karatsuba with sub-problems of length <= cutoff
// handed to the direct convolution. A cutoff of 1 or less recurses all the
// way down to single digits.
func KaratsubaWithCutoff(a, b Vector, cutoff int) (Vector, error) {
	if err := checkLengths(a, b); err != nil {
		return nil, err
	}
	return karatsuba(a, b, cutoff)
}

func karatsuba(x, y Vector, cutoff int) (Vector, error) {
	n := len(x)
	switch {
	case n == 0:
		return Vector{}, nil
	case n == 1:
		return Vector{x[0] * y[0], 0}, nil
	case n <= cutoff:
		return direct(x, y), nil
	}

	mid := n / 2
	low1, high1 := x[:mid], x[mid:]
	low2, high2 := y[:mid], y[mid:]

	z0, err := karatsuba(low1, low2, cutoff)
	if err != nil {
		return nil, err
	}
	z2, err := karatsuba(high1, high2, cutoff)
	if err != nil {
		return nil, err
	}

	sum1, err := addHalves(low1, high1)
	if err != nil {
		return nil, err
	}
	sum2, err := addHalves(low2, high2)
	if err != nil {
		return nil, err
	}
	z1, err := karatsuba(sum1, sum2, cutoff)
	if err != nil {
		return nil, err
	}

	out := make(Vector, 2*n)
	for i, c := range z0 {
		out[i] += c
	}
	for i, c := range z1 {
		if i < len(z0) {
			c -= z0[i]
		}
		if i < len(z2) {
			c -= z2[i]
		}
		out[mid+i] += c
	}
	for i, c := range z2 {
		out[2*mid+i] += c
	}
	return out, nil
}

// addHalves returns low + high coefficient-wise, with low zero-extended to
// the length of high. The low half is never longer than the high half.
func addHalves(low, high Vector) (Vector, error) {
	if len(low) > len(high) || len(high)-len(low) > 1 {
		return nil, ErrMalformedSplit
	}
	sum := make(Vector, len(high))
	copy(sum, low)
	for i, c := range high {
		sum[i] += c
	}
	return sum, nil
}

type karatsubaAlgorithm struct{}

func (karatsubaAlgorithm) Name() string { return "Karatsuba" }

func (karatsubaAlgorithm) Product(a, b Vector, opts Options) (Vector, error) {
	return KaratsubaWithCutoff(a, b, opts.Cutoff)
}
