// Package tuple implements mixed-radix arithmetic on plain integer tuples.
//
// What:
//
//   - A tuple t = (i0, i1, ..., i{D-1}) addresses one element of a
//     D-dimensional table whose extent along dimension d is counts[d].
//   - Basis precomputes the per-dimension multipliers so that ToIndex is a
//     single dot product: index = Σ basis[d]·t[d].
//   - FromIndex decodes an index by repeated Euclidean division, least
//     significant dimension first.
//   - Enumerate walks every tuple of a table in index order (dimension 0
//     varies fastest). Every table of a grid is populated with it, which
//     keeps tuple order and index order in agreement.
//
// Index layout:
//
//	basis = [1, n0, n0·n1, ..., n0·n1·…·n{D-2}]
//	index = i0 + n0·(i1 + n1·(i2 + … + n{D-2}·i{D-1}))
//
// Helpers:
//
//   - Add:              element-wise sum (cell base + corner offset).
//   - CartesianProduct: concatenation of tuples, in call order.
//   - Partition:        split a tuple at 1-based cut positions.
//   - Compare:          ordering from the last dimension down to the first.
//   - Binary:           the 2^D corner offsets of a D-cell.
//
// Errors:
//
//   - ErrEmpty:            no dimensions given.
//   - ErrInvalidCount:     a per-dimension count is < 1.
//   - ErrIndexOutOfBounds: index outside [0, Π counts).
//   - ErrDimensionMismatch: tuples of different lengths.
//   - ErrInvalidPartition: cut positions out of range or not increasing.
//
// The package holds no state and never refers to a grid.
package tuple
