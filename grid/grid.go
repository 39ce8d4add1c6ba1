package grid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlgrid/interval"
	"github.com/katalvlaran/lvlgrid/tuple"
)

// Grid is a rectilinear D-dimensional grid: the tensor product of D
// ascending coordinate arrays. It owns its node, cell and permutation tables,
// populated once by New and never mutated afterwards, so a *Grid is safe to
// share read-only between goroutines.
//
// For dimension d with Nn[d] values:
//
//	nodeCount[d] = Nn[d]          cellCount[d] = Nn[d]-1
//	nodeBasis[0] = 1              nodeBasis[d] = nodeBasis[d-1]·Nn[d-1]
//	cellBasis[0] = 1              cellBasis[d] = cellBasis[d-1]·(Nn[d-1]-1)
type Grid struct {
	dim       int
	data      [][]float64 // sorted copy of the input, one slice per dimension
	labels    []string
	nodeCount []int
	cellCount []int
	nodeBasis []int
	cellBasis []int
	intervals []interval.Interval
	perms     [][]int // 2^D corner offsets in tuple.Enumerate order
	nodes     []*Node
	cells     []*Cell
}

// New constructs a Grid from per-dimension coordinate arrays.
//
// Stage 1 (Validate): at least one dimension, >= 2 finite values each, matching label count.
// Stage 2 (Prepare): deep-copy and ascending-sort every dimension; reject constant
// dimensions (and duplicates under WithStrictlyAscending).
// Stage 3 (Populate): derive counts, bases and intervals, then fill the
// permutation, node and cell tables.
//
// Errors: ErrNoDimensions, ErrDegenerateDimension, ErrNaNInf,
// ErrLabelCountMismatch, ErrDuplicateCoordinate. No partial Grid is returned.
// Complexity: O(Σ Nn·log Nn + nodeTotal·D + cellTotal·2^D·D).
func New(data [][]float64, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	if err := validateData(data); err != nil {
		return nil, fmt.Errorf("grid.New: %w", err)
	}
	if err := validateLabels(o.labels, len(data)); err != nil {
		return nil, fmt.Errorf("grid.New: %w", err)
	}

	sorted := make([][]float64, len(data))
	for d, values := range data {
		sorted[d] = append([]float64(nil), values...)
		sort.Float64s(sorted[d])
		if err := validateSorted(d, sorted[d], o.strictlyAscending); err != nil {
			return nil, fmt.Errorf("grid.New: %w", err)
		}
	}

	labels := o.labels
	if labels == nil {
		labels = make([]string, len(data))
		for d := range labels {
			labels[d] = DefaultLabel
		}
	}

	return build(sorted, labels), nil
}

// build assembles a Grid from validated, sorted data it takes ownership of.
func build(data [][]float64, labels []string) *Grid {
	dim := len(data)
	g := &Grid{
		dim:       dim,
		data:      data,
		labels:    labels,
		nodeCount: make([]int, dim),
		cellCount: make([]int, dim),
		intervals: make([]interval.Interval, dim),
	}
	for d, values := range data {
		g.nodeCount[d] = len(values)
		g.cellCount[d] = len(values) - 1
		// validated upstream: first < last
		g.intervals[d], _ = interval.New(values[0], values[len(values)-1])
	}
	g.nodeBasis = tuple.Basis(g.nodeCount)
	g.cellBasis = tuple.Basis(g.cellCount)
	g.populate()

	return g
}

// populate fills the permutation, node and cell tables with the single
// enumeration order of tuple.Enumerate, so table position == tuple index.
// Cells are filled last because they resolve their corners through the
// permutation table and the node basis.
func (g *Grid) populate() {
	g.perms = tuple.Binary(g.dim)

	g.nodes = make([]*Node, tuple.Total(g.nodeCount))
	_ = tuple.Enumerate(g.nodeCount, func(index int, t []int) {
		g.nodes[index] = newNode(g, t, index)
	})

	g.cells = make([]*Cell, tuple.Total(g.cellCount))
	_ = tuple.Enumerate(g.cellCount, func(index int, t []int) {
		g.cells[index] = newCell(g, t, index)
	})
}

// Dim returns the number of dimensions D.
func (g *Grid) Dim() int { return g.dim }

// NodeTotal returns Π Nn[d].
func (g *Grid) NodeTotal() int { return len(g.nodes) }

// CellTotal returns Π (Nn[d]-1).
func (g *Grid) CellTotal() int { return len(g.cells) }

// PermCount returns 2^D, the number of corners of a cell.
func (g *Grid) PermCount() int { return len(g.perms) }

// NodeCounts returns a copy of the per-dimension node counts.
func (g *Grid) NodeCounts() []int { return append([]int(nil), g.nodeCount...) }

// CellCounts returns a copy of the per-dimension cell counts.
func (g *Grid) CellCounts() []int { return append([]int(nil), g.cellCount...) }

// NodeBasis returns a copy of the node index basis.
func (g *Grid) NodeBasis() []int { return append([]int(nil), g.nodeBasis...) }

// CellBasis returns a copy of the cell index basis.
func (g *Grid) CellBasis() []int { return append([]int(nil), g.cellBasis...) }

// Data returns a deep copy of the sorted coordinate arrays.
func (g *Grid) Data() [][]float64 {
	out := make([][]float64, g.dim)
	for d := range g.data {
		out[d] = append([]float64(nil), g.data[d]...)
	}

	return out
}

// DataAt returns a copy of the sorted coordinates of dimension d.
// Errors: ErrIndexOutOfBounds.
func (g *Grid) DataAt(d int) ([]float64, error) {
	if d < 0 || d >= g.dim {
		return nil, fmt.Errorf("DataAt(%d): %w", d, ErrIndexOutOfBounds)
	}

	return append([]float64(nil), g.data[d]...), nil
}

// Labels returns a copy of the per-dimension labels.
func (g *Grid) Labels() []string { return append([]string(nil), g.labels...) }

// Label returns the label of dimension d, or "" when d is out of range.
func (g *Grid) Label(d int) string {
	if d < 0 || d >= g.dim {
		return ""
	}

	return g.labels[d]
}

// Intervals returns a copy of the per-dimension bounds.
func (g *Grid) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), g.intervals...)
}

// Interval returns the bound of dimension d.
// Errors: ErrIndexOutOfBounds.
func (g *Grid) Interval(d int) (interval.Interval, error) {
	if d < 0 || d >= g.dim {
		return interval.Interval{}, fmt.Errorf("Interval(%d): %w", d, ErrIndexOutOfBounds)
	}

	return g.intervals[d], nil
}

// Permutations returns a copy of the 2^D corner offsets. Position p of this
// table is the position p of every Cell's VerticesIndex and every
// Interpolant's weights.
func (g *Grid) Permutations() [][]int {
	out := make([][]int, len(g.perms))
	for p, perm := range g.perms {
		out[p] = append([]int(nil), perm...)
	}

	return out
}

// Nodes returns the node table in index order. The slice is a copy; the
// *Node values are shared and immutable.
func (g *Grid) Nodes() []*Node { return append([]*Node(nil), g.nodes...) }

// Cells returns the cell table in index order. The slice is a copy; the
// *Cell values are shared and immutable.
func (g *Grid) Cells() []*Cell { return append([]*Cell(nil), g.cells...) }

// Node returns the node at contiguous index i.
// Errors: ErrIndexOutOfBounds.
func (g *Grid) Node(i int) (*Node, error) {
	if i < 0 || i >= len(g.nodes) {
		return nil, fmt.Errorf("Node(%d): %w", i, ErrIndexOutOfBounds)
	}

	return g.nodes[i], nil
}

// Cell returns the cell at contiguous index i.
// Errors: ErrIndexOutOfBounds.
func (g *Grid) Cell(i int) (*Cell, error) {
	if i < 0 || i >= len(g.cells) {
		return nil, fmt.Errorf("Cell(%d): %w", i, ErrIndexOutOfBounds)
	}

	return g.cells[i], nil
}

// NodeIndex returns the contiguous node index of t.
// Errors: ErrDimensionMismatch, ErrIndexOutOfBounds.
func (g *Grid) NodeIndex(t []int) (int, error) {
	if err := validateTuple(t, g.nodeCount); err != nil {
		return 0, fmt.Errorf("NodeIndex: %w", err)
	}

	return tuple.ToIndex(t, g.nodeBasis), nil
}

// CellIndex returns the contiguous cell index of t.
// Errors: ErrDimensionMismatch, ErrIndexOutOfBounds.
func (g *Grid) CellIndex(t []int) (int, error) {
	if err := validateTuple(t, g.cellCount); err != nil {
		return 0, fmt.Errorf("CellIndex: %w", err)
	}

	return tuple.ToIndex(t, g.cellBasis), nil
}

// NodeAddress binds t to this grid as a node address.
// Errors: ErrDimensionMismatch, ErrIndexOutOfBounds.
func (g *Grid) NodeAddress(t []int) (Address, error) {
	if err := validateTuple(t, g.nodeCount); err != nil {
		return Address{}, fmt.Errorf("NodeAddress: %w", err)
	}

	return newAddress(g, KindNode, t), nil
}

// CellAddress binds t to this grid as a cell address.
// Errors: ErrDimensionMismatch, ErrIndexOutOfBounds.
func (g *Grid) CellAddress(t []int) (Address, error) {
	if err := validateTuple(t, g.cellCount); err != nil {
		return Address{}, fmt.Errorf("CellAddress: %w", err)
	}

	return newAddress(g, KindCell, t), nil
}

// NodeAddressAt decodes node index i into its address.
// Errors: ErrIndexOutOfBounds.
func (g *Grid) NodeAddressAt(i int) (Address, error) {
	t, err := tuple.FromIndex(i, g.nodeCount)
	if err != nil {
		return Address{}, fmt.Errorf("NodeAddressAt(%d): %w", i, ErrIndexOutOfBounds)
	}

	return Address{grid: g, kind: KindNode, t: t}, nil
}

// CellAddressAt decodes cell index i into its address.
// Errors: ErrIndexOutOfBounds.
func (g *Grid) CellAddressAt(i int) (Address, error) {
	t, err := tuple.FromIndex(i, g.cellCount)
	if err != nil {
		return Address{}, fmt.Errorf("CellAddressAt(%d): %w", i, ErrIndexOutOfBounds)
	}

	return Address{grid: g, kind: KindCell, t: t}, nil
}
