// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every exported operation returns one of these sentinels, bare or wrapped
// with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.
// User-triggered conditions never panic.

package grid

import "errors"

// ERROR PRIORITY (construction):
// no dimensions -> per dimension (value count, NaN/Inf) -> label count ->
// constant dimension -> duplicates.
// Query-time errors (index, field size, point dimension) leave the Grid intact.

var (
	// ErrNoDimensions indicates that a grid was requested with zero dimensions.
	ErrNoDimensions = errors.New("grid: at least one dimension is required")

	// ErrDegenerateDimension indicates a dimension with fewer than 2 coordinate
	// values, or whose values are all equal; such a dimension has no cell.
	ErrDegenerateDimension = errors.New("grid: dimension must hold at least 2 distinct values")

	// ErrLabelCountMismatch indicates that the label list length differs from the dimension count.
	ErrLabelCountMismatch = errors.New("grid: label count does not match dimension count")

	// ErrDimensionMismatch indicates a tuple, coordinate vector or weight list
	// whose length does not match the declared dimensionality.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrIndexOutOfBounds indicates an index or tuple component outside the grid,
	// or a field array shorter than required by an Interpolant.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrNaNInf indicates a NaN or ±Inf grid coordinate.
	ErrNaNInf = errors.New("grid: NaN or Inf coordinate")

	// ErrNaNCoordinate indicates a NaN point coordinate, which cannot be legalized.
	ErrNaNCoordinate = errors.New("grid: NaN point coordinate")

	// ErrDuplicateCoordinate indicates repeated values in a dimension while
	// strictly ascending data is required (see WithStrictlyAscending).
	ErrDuplicateCoordinate = errors.New("grid: duplicate coordinate value")

	// ErrDegenerateCell indicates a zero-volume cell, produced by duplicated
	// coordinates; multilinear weights are undefined there.
	ErrDegenerateCell = errors.New("grid: cell has zero volume")

	// ErrNilPoint indicates that a nil *Point was passed where a point is required.
	ErrNilPoint = errors.New("grid: nil point")

	// ErrNilGrid indicates that a nil *Grid was passed where a grid is required.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrTooFewGrids indicates a Cartesian product requested with fewer than 2 operands.
	ErrTooFewGrids = errors.New("grid: cartesian product needs at least 2 grids")
)
