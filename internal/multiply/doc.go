// Package multiply implements coefficient-vector multiplication of large
// integers with two interchangeable algorithms: a quadratic direct
// convolution and the recursive Karatsuba method.
//
// A Vector holds the digits of an integer, least significant first. Both
// algorithms take two vectors of equal length n and return their uncarried
// convolution as a vector of length 2n: out[k] is the sum of a[i]*b[j] over
// all i+j = k. No carry propagation or base normalization is performed.
//
// # Overflow
//
// Coefficients are int64 and arithmetic wraps on overflow. Karatsuba's
// three-product identity holds modulo 2^64, so both algorithms agree
// bit-for-bit even when intermediate sums wrap, and the results are exact
// whenever every true output coefficient fits in an int64. CheckProduct
// detects outputs that do not match the exact product.
//
// # Architecture
//
// Algorithm is the pure, synchronous contract implemented by Direct and
// Karatsuba. Multiplier decorates an Algorithm with tracing, Prometheus
// metrics and debug logging; the Factory hands out decorated instances by
// name ("naive", "karatsuba").
package multiply
