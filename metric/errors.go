package metric

import "github.com/pkg/errors"

// Sentinel errors for metric construction.
var (
	// ErrInvalidDimensionality indicates a weight vector length that does
	// not match the declared point dimensionality, or a non-positive
	// dimensionality passed to a translation-augmented constructor.
	ErrInvalidDimensionality = errors.New("metric: invalid dimensionality")
)
