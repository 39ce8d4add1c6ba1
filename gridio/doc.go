// Package gridio moves grids and node-sampled fields across the process
// boundary.
//
// Two formats are supported:
//
//   - a compact little-endian binary layout holding the coordinates and
//     labels of a grid (Encode, Decode):
//
//     int32 D
//     D × { int32 count | int32 labelBytes | labelBytes × byte (UTF-8) | count × float64 }
//
//   - a TOML document holding a grid and any number of named scalar fields
//     sampled at its nodes (LoadDocument, WriteDocument):
//
//     [[dimension]]
//     label  = "x"
//     values = [0.0, 0.25, 1.0]
//
//     [[field]]
//     name   = "Z"
//     values = [1.0, 2.0, ...] # one sample per node, in node index order
//
// Node, cell and permutation tables are never persisted: readers rebuild
// them through grid.New, which re-sorts and re-validates the coordinates.
// ReadFile and WriteFile pick the format from the file extension.
//
// Readers enforce size limits (WithMaxDimensions, WithMaxCount, WithMaxNodes,
// WithMaxTableEntries) before building a grid, so a short header cannot
// request huge node and cell tables. They report what they loaded through a
// logrus FieldLogger (WithLogger).
package gridio
