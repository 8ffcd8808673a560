package calibration

import (
	"slices"

	"github.com/agbru/mulbench/internal/sysmon"
)

// CandidateCutoffs returns the Karatsuba cutoffs worth timing on this
// machine. Cutoff 1 (pure recursion) is always included as the baseline.
// CPUs with wide vector units keep the direct loop fast on longer
// operands, so larger cutoffs are added for them.
func CandidateCutoffs() []int {
	c := []int{1, 4, 8, 16, 24, 32, 48, 64, 96, 128}
	if sysmon.HasWideVectors() {
		c = append(c, 192, 256)
	}
	return c
}

// QuickCandidateCutoffs is the reduced set used by the automatic
// calibration that runs before a sweep.
func QuickCandidateCutoffs() []int {
	return []int{1, 16, 32, 64}
}

// CalibrationSizes returns the operand lengths timed for every candidate.
// They straddle typical cutoffs and the default sweep range, and each is
// chosen so that both odd and even splits occur.
func CalibrationSizes(maxSize int) []int {
	sizes := []int{127, 500, 1999}
	if maxSize > 0 {
		sizes = slices.DeleteFunc(sizes, func(n int) bool { return n > maxSize })
		if len(sizes) == 0 {
			sizes = []int{maxSize}
		}
	}
	return sizes
}
