package stats

import (
	"fmt"

	"github.com/findatum/serieskit/internal/vec"
)

// MovingAverage computes, at each index i >= window-1, the arithmetic
// mean of the window most recent values ending at i.
//
// The sum is maintained incrementally (add the entering value, subtract
// the leaving one), so the whole pass is O(n) regardless of window size.
// Only the first window sum uses the lane kernel.
//
// Returns ErrInvalidWindow if window is zero or exceeds len(values).
func MovingAverage(values []float64, window int) ([]float64, error) {
	out := make([]float64, len(values))
	if err := MovingAverageInto(out, values, window); err != nil {
		return nil, err
	}

	return out, nil
}

// MovingAverageInto is the in-place variant of MovingAverage, writing
// into the caller-provided dst. dst must have the same length as values;
// slots before index window-1 are left untouched.
func MovingAverageInto(dst, values []float64, window int) error {
	if window <= 0 || window > len(values) {
		return fmt.Errorf("%w: window=%d, len=%d", ErrInvalidWindow, window, len(values))
	}
	if len(dst) != len(values) {
		return fmt.Errorf("%w: dst=%d, values=%d", ErrLengthMismatch, len(dst), len(values))
	}

	w := float64(window)

	sum := vec.Sum(values[:window])
	dst[window-1] = sum / w

	for i := window; i < len(values); i++ {
		sum += values[i]
		sum -= values[i-window]
		dst[i] = sum / w
	}

	return nil
}
