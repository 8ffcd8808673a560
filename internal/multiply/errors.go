package multiply

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when the operands differ in length.
	ErrLengthMismatch = errors.New("multiply: operands must have equal length")

	// ErrMalformedSplit reports a Karatsuba split whose halves cannot be
	// summed coefficient-wise. It indicates an internal defect.
	ErrMalformedSplit = errors.New("multiply: malformed karatsuba split")

	// ErrProductMismatch is returned by CheckProduct when a product vector
	// does not equal the exact convolution of its operands, either because
	// an int64 coefficient overflowed or because the product is wrong.
	ErrProductMismatch = errors.New("multiply: product does not match operands")
)

// LengthMismatchError carries the offending operand lengths. It matches
// ErrLengthMismatch with errors.Is.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("multiply: operands must have equal length (got %d and %d)", e.Left, e.Right)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

func checkLengths(a, b Vector) error {
	if len(a) != len(b) {
		return &LengthMismatchError{Left: len(a), Right: len(b)}
	}
	return nil
}
