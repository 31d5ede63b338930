package stats

import "errors"

var (
	// ErrInvalidWindow reports a window of zero or one larger than the
	// input sequence.
	ErrInvalidWindow = errors.New("stats: window must be in [1, len(values)]")

	// ErrInvalidAlpha reports a smoothing factor outside [0.0, 1.0].
	ErrInvalidAlpha = errors.New("stats: alpha must be in [0.0, 1.0]")

	// ErrEmptyInput reports an empty value sequence where at least one
	// element is required.
	ErrEmptyInput = errors.New("stats: empty input sequence")

	// ErrLengthMismatch reports a caller-provided output slice whose
	// length differs from the input's.
	ErrLengthMismatch = errors.New("stats: output length must equal input length")
)
