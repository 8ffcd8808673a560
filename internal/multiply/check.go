//go:build !gmp

package multiply

import (
	"fmt"
	"math/big"
)

// CheckProduct verifies that product is the exact convolution of a and b by
// reading each vector as the digits of one integer in base 2^65 and
// comparing A·B with P. Every int64 coefficient is a valid balanced digit in
// that base, so the check is exact rather than probabilistic.
//
// It returns ErrProductMismatch (wrapped) when the product is wrong or when
// an output coefficient overflowed int64.
func CheckProduct(a, b, product Vector) error {
	if err := checkLengths(a, b); err != nil {
		return err
	}
	if len(product) != 2*len(a) {
		return fmt.Errorf("%w: length %d, want %d", ErrProductMismatch, len(product), 2*len(a))
	}

	want := new(big.Int).Mul(evaluate(a), evaluate(b))
	if want.Cmp(evaluate(product)) != 0 {
		return fmt.Errorf("%w (n=%d)", ErrProductMismatch, len(a))
	}
	return nil
}

func evaluate(v Vector) *big.Int {
	acc := new(big.Int)
	digit := new(big.Int)
	for i := len(v) - 1; i >= 0; i-- {
		acc.Lsh(acc, evaluationShift)
		acc.Add(acc, digit.SetInt64(v[i]))
	}
	return acc
}
