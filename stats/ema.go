package stats

import (
	"fmt"

	"github.com/findatum/serieskit/internal/pool"
	"github.com/findatum/serieskit/internal/vec"
)

// ExponentialMovingAverage computes the recursively weighted average
// defined by:
//
//	out[0] = values[0]
//	out[i] = alpha*values[i] + (1-alpha)*out[i-1]   for i >= 1
//
// The recurrence is inherently sequential: out[i] depends on out[i-1].
// Computing blocks of outputs "in parallel" from stale previous outputs
// is a correctness bug, not an optimization, so the recurrence itself is
// evaluated strictly in order. The independent per-element products
// alpha*values[i] are precomputed with the lane kernel, which is the
// only data-parallel part of the definition.
//
// Returns ErrInvalidAlpha if alpha is outside [0.0, 1.0], and
// ErrEmptyInput if values is empty.
func ExponentialMovingAverage(values []float64, alpha float64) ([]float64, error) {
	out := make([]float64, len(values))
	if err := ExponentialMovingAverageInto(out, values, alpha); err != nil {
		return nil, err
	}

	return out, nil
}

// ExponentialMovingAverageInto is the in-place variant of
// ExponentialMovingAverage, writing into the caller-provided dst. dst
// must have the same length as values and may alias it.
func ExponentialMovingAverageInto(dst, values []float64, alpha float64) error {
	if alpha < 0.0 || alpha > 1.0 {
		return fmt.Errorf("%w: alpha=%v", ErrInvalidAlpha, alpha)
	}
	if len(values) == 0 {
		return ErrEmptyInput
	}
	if len(dst) != len(values) {
		return fmt.Errorf("%w: dst=%d, values=%d", ErrLengthMismatch, len(dst), len(values))
	}

	scaled, cleanup := pool.GetFloat64Slice(len(values))
	defer cleanup()
	vec.Scale(scaled, values, alpha)

	beta := 1.0 - alpha

	prev := values[0]
	dst[0] = prev
	for i := 1; i < len(values); i++ {
		prev = scaled[i] + beta*prev
		dst[i] = prev
	}

	return nil
}
