// Package grid is a rectilinear N-dimensional grid engine: a tensor-product
// grid built from D ascending coordinate arrays, with multilinear
// interpolation of fields sampled at its nodes.
//
// What:
//
//   - Grid owns the sorted coordinates, the node and cell tables and the
//     2^D corner-permutation table, all populated once by New.
//   - Address binds an integer tuple to a Grid as a node or cell position;
//     Index is a dot product with the node or cell basis.
//   - Point is a continuous coordinate vector, always clamped into the grid
//     domain; CellIndex locates the enclosing cell.
//   - Cell.Interpolant computes the 2^D multilinear weights of a point;
//     Interpolant.Lerp applies them to scalar or vector fields.
//   - CartesianProduct concatenates the dimensions of several grids.
//   - Evaluate is the stateless per-frame entry point for host layers.
//
// Index layout (dimension 0 varies fastest):
//
//	node (i0, i1, …, i{D-1}) is at  i0 + Nn0·i1 + Nn0·Nn1·i2 + …
//	cell (i0, i1, …, i{D-1}) is at  i0 + Nc0·i1 + Nc0·Nc1·i2 + …   (Nc = Nn-1)
//
// Corner permutations (D=2):
//
//	p=0: +(0,0)   p=1: +(1,0)   p=2: +(0,1)   p=3: +(1,1)
//
//	(0,1)───(1,1)        weight[p] = volume of the sub-box opposite
//	  │   ·x  │          corner p, divided by the cell volume
//	(0,0)───(1,0)
//
// Usage:
//
//	g, err := grid.New([][]float64{{0, 0.25, 1}, {0, 0.5, 1}}, grid.WithLabels("u", "v"))
//	cell, ip, err := grid.Evaluate(g, []float64{0.1, 0.1})
//	z, err := ip.Lerp(field) // field has g.NodeTotal() samples
//
// Concurrency:
//
//   - Grid, Node, Cell, Address and Interpolant are immutable once built
//     and safe for concurrent reads.
//   - Point is mutable and must be owned by a single caller at a time.
//
// Errors:
//
//   - ErrNoDimensions, ErrDegenerateDimension, ErrNaNInf, ErrLabelCountMismatch,
//     ErrDuplicateCoordinate: construction.
//   - ErrDimensionMismatch, ErrIndexOutOfBounds, ErrNaNCoordinate, ErrNilPoint: queries.
//   - ErrDegenerateCell: interpolation in a zero-volume cell.
//   - ErrNilGrid, ErrTooFewGrids: composition.
package grid
