package multiply

// Direct returns the uncarried convolution of a and b by schoolbook
// multiplication: every coefficient pair (i, j) is multiplied once and
// accumulated into out[i+j]. It runs in Θ(n²) time and allocates only the
// 2n-element result.
//
// Operands of different lengths are rejected with a *LengthMismatchError.
// Empty operands yield an empty vector; single digits yield [a0*b0, 0].
func Direct(a, b Vector) (Vector, error) {
	if err := checkLengths(a, b); err != nil {
		return nil, err
	}
	return direct(a, b), nil
}

// direct assumes len(a) == len(b).
func direct(a, b Vector) Vector {
	out := make(Vector, 2*len(a))
	for i, ai := range a {
		row := out[i : i+len(b)]
		for j, bj := range b {
			row[j] += ai * bj
		}
	}
	return out
}

type directAlgorithm struct{}

func (directAlgorithm) Name() string { return "Naive" }

func (directAlgorithm) Product(a, b Vector, _ Options) (Vector, error) {
	return Direct(a, b)
}
