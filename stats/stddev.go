package stats

import (
	"fmt"
	"math"

	"github.com/findatum/serieskit/internal/vec"
)

// WindowedStdDev computes, at each index i >= window-1, the population
// standard deviation of the window most recent values ending at i
// (squared deviations divided by window, not window-1).
//
// Each window uses a two-pass computation: the windowed mean first, then
// the mean of squared deviations from it, then the square root. Both
// passes run on the lane kernels, so results can differ from a strict
// sequential evaluation by summation-order rounding only.
//
// Returns ErrInvalidWindow if window is zero or exceeds len(values).
func WindowedStdDev(values []float64, window int) ([]float64, error) {
	out := make([]float64, len(values))
	if err := WindowedStdDevInto(out, values, window); err != nil {
		return nil, err
	}

	return out, nil
}

// WindowedStdDevInto is the in-place variant of WindowedStdDev, writing
// into the caller-provided dst. dst must have the same length as values;
// slots before index window-1 are left untouched. dst must not alias
// values, since earlier outputs would overwrite values still inside a
// later window.
func WindowedStdDevInto(dst, values []float64, window int) error {
	if window <= 0 || window > len(values) {
		return fmt.Errorf("%w: window=%d, len=%d", ErrInvalidWindow, window, len(values))
	}
	if len(dst) != len(values) {
		return fmt.Errorf("%w: dst=%d, values=%d", ErrLengthMismatch, len(dst), len(values))
	}

	w := float64(window)

	for i := window - 1; i < len(values); i++ {
		win := values[i+1-window : i+1]

		mean := vec.Sum(win) / w
		variance := vec.SumSquaredDiff(win, mean) / w
		dst[i] = math.Sqrt(variance)
	}

	return nil
}
