// Package calibration searches for the Karatsuba cutoff (the operand
// length at or below which the recursion switches to the direct
// convolution) that is fastest on the current machine, and caches it in a
// profile keyed to the hardware.
package calibration
