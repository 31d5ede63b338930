package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMovingAverage_KnownScenario(t *testing.T) {
	out, err := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	require.Len(t, out, 5)

	require.Equal(t, 2.0, out[2])
	require.Equal(t, 3.0, out[3])
	require.Equal(t, 4.0, out[4])
}

func TestMovingAverage_WindowOne(t *testing.T) {
	values := []float64{3.5, -1.25, 0, 42}

	out, err := MovingAverage(values, 1)
	require.NoError(t, err)
	require.Equal(t, values, out)
}

func TestMovingAverage_FullWindow(t *testing.T) {
	out, err := MovingAverage([]float64{2, 4, 6, 8}, 4)
	require.NoError(t, err)
	require.Equal(t, 5.0, out[3])
}

func TestMovingAverage_MatchesNaiveMean(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]float64, 500)
	for i := range values {
		values[i] = rng.NormFloat64() * 50
	}

	for _, window := range []int{1, 2, 3, 4, 5, 17, 499, 500} {
		out, err := MovingAverage(values, window)
		require.NoError(t, err)
		require.Len(t, out, len(values))

		// The incremental sum must agree with a per-window recomputed
		// mean up to accumulated rounding.
		for i := window - 1; i < len(values); i += 37 {
			sum := 0.0
			for _, v := range values[i+1-window : i+1] {
				sum += v
			}
			require.InDelta(t, sum/float64(window), out[i], 1e-9, "window=%d i=%d", window, i)
		}
	}
}

func TestMovingAverage_InvalidWindow(t *testing.T) {
	values := []float64{1, 2, 3}

	_, err := MovingAverage(values, 0)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = MovingAverage(values, 4)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = MovingAverage(nil, 1)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = MovingAverage(values, -1)
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestMovingAverage_Pure(t *testing.T) {
	values := []float64{5, 4, 3, 2, 1}
	snapshot := append([]float64(nil), values...)

	first, err := MovingAverage(values, 2)
	require.NoError(t, err)
	second, err := MovingAverage(values, 2)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, snapshot, values, "input must not be modified")
}

func TestMovingAverageInto_LengthMismatch(t *testing.T) {
	err := MovingAverageInto(make([]float64, 2), []float64{1, 2, 3}, 2)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMovingAverageInto_LeavesUndefinedSlotsAlone(t *testing.T) {
	dst := []float64{-99, -99, -99, -99}

	err := MovingAverageInto(dst, []float64{1, 2, 3, 4}, 3)
	require.NoError(t, err)

	// Slots before window-1 are not part of the contract and must not
	// be written.
	require.Equal(t, -99.0, dst[0])
	require.Equal(t, -99.0, dst[1])
	require.Equal(t, 2.0, dst[2])
	require.Equal(t, 3.0, dst[3])
}
