// Package lvlgrid is an in-memory engine for rectilinear N-dimensional grids:
// tensor-product grids built from D ascending coordinate arrays, with
// mixed-radix node and cell indexing and multilinear interpolation of fields
// sampled at the nodes.
//
// What is inside?
//
//	A pure-Go library that brings together:
//		• Tuple math: mixed-radix index <-> tuple, enumeration, corner permutations
//		• Intervals: closed [t0,t1] ranges with clamping and normalization
//		• Grids: node, cell and 2^D permutation tables populated once, read concurrently
//		• Interpolation: multilinear weights for scalar, vector and matrix fields
//		• Composition: Cartesian products, normalization, deep copies
//		• Persistence: a compact binary layout and TOML grid/field documents
//
// Under the hood, everything is organized under these subpackages:
//
//	tuple/         mixed-radix index arithmetic shared by nodes, cells and permutations
//	interval/      one-dimensional closed intervals
//	grid/          Grid, Address, Node, Cell, Point, Interpolant, CartesianProduct
//	gridio/        binary and TOML readers/writers
//	cmd/gridctl/   command-line front end over grid and gridio
//
// Quick ASCII example (D=2, dimension 0 varies fastest):
//
//	 6───7───8      nodes: 3×3 = 9
//	 │ 2 │ 3 │      cells: 2×2 = 4
//	 3───4───5      cell 0 corners, in permutation order: 0, 1, 3, 4
//	 │ 0 │ 1 │
//	 0───1───2
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
