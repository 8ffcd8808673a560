package multiply

import (
	"fmt"
	"strconv"
	"strings"
)

// evaluationShift is the digit width, in bits, used when CheckProduct
// reads a vector as a single integer. |int64| < 2^64 = 2^65/2.
const evaluationShift = 65

// Vector is a little-endian coefficient vector: index 0 holds the least
// significant digit.
type Vector []int64

// Len returns the number of coefficients.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v. The copy of a nil vector is an
// empty, non-nil vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and w have the same length and coefficients.
// A nil vector equals an empty one.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every coefficient is zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// String renders the vector as a comma separated list in brackets,
// e.g. "[4, 13, 28, 27, 18, 0]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(c, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseVector parses a comma or whitespace separated list of base-10
// integers. Surrounding brackets are accepted so that the output of
// Vector.String round-trips. An empty input yields an empty vector.
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	v := make(Vector, 0, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d (%q): %w", i, f, err)
		}
		v = append(v, c)
	}
	return v, nil
}
