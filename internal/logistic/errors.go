package logistic

import "errors"

var (
	// ErrParamRange indicates a sweep parameter bound outside (0, 4].
	ErrParamRange = errors.New("logistic: parameter r outside (0, 4]")

	// ErrGridSize indicates a parameter grid with fewer than two points.
	ErrGridSize = errors.New("logistic: parameter grid needs at least two points")

	// ErrGridOrder indicates an inverted parameter range.
	ErrGridOrder = errors.New("logistic: parameter range must satisfy min < max")

	// ErrStepCount indicates a non-positive iteration or sample count.
	ErrStepCount = errors.New("logistic: step count must be positive")
)
