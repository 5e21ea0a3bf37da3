package kdtree

import "github.com/pkg/errors"

// Sentinel errors returned by package kdtree. Wrap with
// errors.WithMessage/errors.WithMessagef for call-site context; compare
// with errors.Is against these values.
var (
	// ErrDimensionMismatch is returned when a point's length does not
	// match the tree's declared dimensionality.
	ErrDimensionMismatch = errors.New("kdtree: point dimensionality mismatch")

	// ErrOutOfRange is returned when a stable index does not name a
	// live point.
	ErrOutOfRange = errors.New("kdtree: index out of range")

	// ErrInvalidCapacity is returned when a non-positive bucket
	// capacity is supplied to New.
	ErrInvalidCapacity = errors.New("kdtree: bucket capacity must be positive")

	// ErrInvalidDimensionality is returned when a non-positive
	// dimensionality is supplied to New.
	ErrInvalidDimensionality = errors.New("kdtree: dimensionality must be positive")

	// ErrUnsupportedOperation is surfaced through Iterator.Err when the
	// backing Tree was mutated after the iterator was created or reset.
	ErrUnsupportedOperation = errors.New("kdtree: unsupported operation")
)
