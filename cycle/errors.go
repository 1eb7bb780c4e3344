package cycle

import "errors"

var (
	// ErrInvalidStepCount indicates that an invalid total step count was provided.
	// A cycle must contain at least one step.
	ErrInvalidStepCount = errors.New("invalid total step count, should be a positive integer")

	// ErrStepOutOfRange indicates that a step index outside [0, totalSteps) was provided.
	ErrStepOutOfRange = errors.New("cycle step out of range")
)
