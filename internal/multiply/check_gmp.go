//go:build gmp

// This file swaps the math/big evaluation in CheckProduct for libgmp. It
// needs the "gmp" build tag and libgmp installed:
//   - Linux: sudo apt-get install libgmp-dev
//   - macOS: brew install gmp
//
// For the vector sizes the harness generates (up to ~10^4 digits, i.e.
// ~650k-bit integers) GMP's multiplication is noticeably faster than
// math/big, which keeps -verify runs cheap.

package multiply

import (
	"fmt"

	"github.com/ncw/gmp"
)

// CheckProduct verifies that product is the exact convolution of a and b.
// See the math/big variant for the evaluation scheme.
func CheckProduct(a, b, product Vector) error {
	if err := checkLengths(a, b); err != nil {
		return err
	}
	if len(product) != 2*len(a) {
		return fmt.Errorf("%w: length %d, want %d", ErrProductMismatch, len(product), 2*len(a))
	}

	want := new(gmp.Int).Mul(evaluate(a), evaluate(b))
	if want.Cmp(evaluate(product)) != 0 {
		return fmt.Errorf("%w (n=%d)", ErrProductMismatch, len(a))
	}
	return nil
}

func evaluate(v Vector) *gmp.Int {
	acc := new(gmp.Int)
	digit := new(gmp.Int)
	for i := len(v) - 1; i >= 0; i-- {
		acc.Lsh(acc, evaluationShift)
		acc.Add(acc, digit.SetInt64(v[i]))
	}
	return acc
}
