package nn

import "errors"

// Sentinel errors returned by constructors and forward passes.
// Callers can match them with errors.Is.
var (
	// ErrInvalidDimension is returned when a layer dimension is not positive.
	ErrInvalidDimension = errors.New("nn: invalid dimension")

	// ErrShapeMismatch is returned when an input or target tensor's shape
	// does not match the module's contract.
	ErrShapeMismatch = errors.New("nn: shape mismatch")

	// ErrInvalidGain is returned when an initialization gain is not positive.
	ErrInvalidGain = errors.New("nn: invalid gain")
)
