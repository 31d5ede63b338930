// Package vec provides small data-parallel float64 kernels for the
// windowed statistics and delta encoding layers.
//
// Each kernel processes Lanes elements per loop iteration using
// independent accumulators or independent element-wise operations, with
// an explicit scalar tail for the remainder. This mirrors the structure
// of 4-wide SIMD code: the compiler is free to lower the lane loop to
// vector instructions, and correctness never depends on it doing so.
//
// Lane summation changes the order in which terms are added, so results
// may differ from a strict left-to-right sum by normal floating-point
// rounding. Callers that compare against a scalar reference must use a
// tolerance, not exact equality.
package vec

// Lanes is the number of elements processed per unrolled iteration.
const Lanes = 4

// Sum returns the sum of values using Lanes independent accumulators
// plus a scalar tail.
func Sum(values []float64) float64 {
	var s0, s1, s2, s3 float64

	n := len(values)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		s0 += values[i]
		s1 += values[i+1]
		s2 += values[i+2]
		s3 += values[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += values[i]
	}

	return sum
}

// SumSquaredDiff returns the sum of squared deviations of values from
// mean, using Lanes independent accumulators plus a scalar tail.
func SumSquaredDiff(values []float64, mean float64) float64 {
	var s0, s1, s2, s3 float64

	n := len(values)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		d0 := values[i] - mean
		d1 := values[i+1] - mean
		d2 := values[i+2] - mean
		d3 := values[i+3] - mean
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		d := values[i] - mean
		sum += d * d
	}

	return sum
}

// Scale writes dst[i] = a * src[i] for all i. dst and src must have the
// same length; they may alias.
func Scale(dst, src []float64, a float64) {
	n := len(src)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		dst[i] = a * src[i]
		dst[i+1] = a * src[i+1]
		dst[i+2] = a * src[i+2]
		dst[i+3] = a * src[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a * src[i]
	}
}

// Delta writes first-order differences of src into dst: dst[0] =
// src[0] - initial, and dst[i] = src[i] - src[i-1] for i >= 1. Each
// output depends only on inputs, never on earlier outputs, so the lane
// loop cannot reorder a data dependency. dst must not alias src.
func Delta(dst, src []float64, initial float64) {
	n := len(src)
	if n == 0 {
		return
	}

	dst[0] = src[0] - initial

	i := 1
	for ; i+Lanes <= n; i += Lanes {
		dst[i] = src[i] - src[i-1]
		dst[i+1] = src[i+1] - src[i]
		dst[i+2] = src[i+2] - src[i+1]
		dst[i+3] = src[i+3] - src[i+2]
	}
	for ; i < n; i++ {
		dst[i] = src[i] - src[i-1]
	}
}
