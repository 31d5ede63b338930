// Package stats computes sliding-window statistics over flat float64
// sequences: moving average, exponential moving average, and windowed
// population standard deviation.
//
// All three are pure functions. Each call validates its parameters,
// writes a freshly allocated (or caller-provided) output of exactly the
// input's length, and shares no state with any other call; they are safe
// to invoke concurrently from independent call sites.
//
// For the window-based statistics, output slots before index window-1
// have no mathematical definition. They are left at zero but their
// contents are unspecified and must not be read.
//
// Inner loops use the lane-unrolled kernels from internal/vec with
// scalar tails. Lane summation may differ from a strict sequential sum
// by floating-point rounding; it never differs algorithmically. The EMA
// recurrence is inherently sequential (each output depends on the
// previous output) and is computed strictly in order; only the
// independent per-element scaling is vectorized.
package stats
