package harness

import (
	"math/rand/v2"

	"github.com/agbru/mulbench/internal/multiply"
)

// Pair is one pair of equal-length operands.
type Pair struct {
	A, B multiply.Vector
}

// GeneratePairs draws m pairs of length-n vectors whose entries are
// uniform in [-2n, 2n].
func GeneratePairs(rng *rand.Rand, n, m int) []Pair {
	pairs := make([]Pair, m)
	for i := range pairs {
		pairs[i] = Pair{A: randomVector(rng, n), B: randomVector(rng, n)}
	}
	return pairs
}

func randomVector(rng *rand.Rand, n int) multiply.Vector {
	v := make(multiply.Vector, n)
	span := int64(4*n + 1)
	for i := range v {
		v[i] = rng.Int64N(span) - int64(2*n)
	}
	return v
}
