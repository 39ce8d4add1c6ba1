package tuple

import "errors"

// Sentinel errors for tuple operations.
var (
	// ErrEmpty indicates that a count list or tuple has no dimensions.
	ErrEmpty = errors.New("tuple: at least one dimension is required")

	// ErrInvalidCount indicates that a per-dimension count is smaller than 1.
	ErrInvalidCount = errors.New("tuple: dimension count must be >= 1")

	// ErrIndexOutOfBounds indicates that a contiguous index lies outside [0, Π counts).
	ErrIndexOutOfBounds = errors.New("tuple: index out of bounds")

	// ErrDimensionMismatch indicates that two tuples do not have the same length.
	ErrDimensionMismatch = errors.New("tuple: dimension mismatch")

	// ErrInvalidPartition indicates cut points outside [1, D-1] or an empty segment.
	ErrInvalidPartition = errors.New("tuple: invalid partition")
)
