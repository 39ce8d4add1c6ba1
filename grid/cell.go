package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/tuple"
)

// Cell is the hyper-rectangle bounded by the 2^D nodes tuple + perm for
// every corner offset perm of the grid's permutation table.
//
//	volume          = Π_d (data[d][t[d]+1] - data[d][t[d]])
//	verticesIndex[p] = nodeIndex(t + Permutations[p])
//
// Cells are created once while the Grid is populated and never mutated.
type Cell struct {
	addr     Address
	index    int
	volume   float64
	vertices []int
}

// newCell builds the cell at tuple t. The node table is not consulted, only
// the node basis, so cells may be built in any order after the bases.
func newCell(g *Grid, t []int, index int) *Cell {
	volume := 1.0
	for d, i := range t {
		volume *= g.data[d][i+1] - g.data[d][i]
	}

	vertices := make([]int, len(g.perms))
	corner := make([]int, len(t))
	for p, perm := range g.perms {
		for d := range t {
			corner[d] = t[d] + perm[d]
		}
		vertices[p] = tuple.ToIndex(corner, g.nodeBasis)
	}

	return &Cell{
		addr:     newAddress(g, KindCell, t),
		index:    index,
		volume:   volume,
		vertices: vertices,
	}
}

// Address returns the cell address (KindCell).
func (c *Cell) Address() Address { return c.addr }

// Index returns the contiguous cell index.
func (c *Cell) Index() int { return c.index }

// Dim returns the cell dimension.
func (c *Cell) Dim() int { return c.addr.Dim() }

// Volume returns the product of the per-dimension cell widths.
func (c *Cell) Volume() float64 { return c.volume }

// VerticesIndex returns a copy of the 2^D corner node indices, ordered like
// the grid's permutation table.
func (c *Cell) VerticesIndex() []int { return append([]int(nil), c.vertices...) }

// Vertices returns the 2^D corner nodes in permutation order.
func (c *Cell) Vertices() []*Node {
	g := c.addr.grid
	out := make([]*Node, len(c.vertices))
	for p, i := range c.vertices {
		out[p] = g.nodes[i]
	}

	return out
}

// Bounds returns the lower and upper corner coordinates of the cell.
func (c *Cell) Bounds() (lo, hi []float64) {
	g := c.addr.grid
	lo = make([]float64, g.dim)
	hi = make([]float64, g.dim)
	for d, i := range c.addr.t {
		lo[d] = g.data[d][i]
		hi[d] = g.data[d][i+1]
	}

	return lo, hi
}

// Contains reports whether coord lies inside the closed cell. A vector of the
// wrong length is never contained.
func (c *Cell) Contains(coord []float64) bool {
	g := c.addr.grid
	if len(coord) != g.dim {
		return false
	}
	for d, i := range c.addr.t {
		if coord[d] < g.data[d][i] || coord[d] > g.data[d][i+1] {
			return false
		}
	}

	return true
}

// Interpolant computes the multilinear weights of p inside this cell.
// Errors: ErrNilPoint, plus those of InterpolantAt.
func (c *Cell) Interpolant(p *Point) (Interpolant, error) {
	if p == nil {
		return Interpolant{}, fmt.Errorf("Cell.Interpolant: %w", ErrNilPoint)
	}

	return c.InterpolantAt(p.coord)
}

// InterpolantAt computes the multilinear weights of coord inside this cell.
//
// For every dimension d with cell bounds x0 <= x <= x1:
//
//	lower[d] = x - x0      upper[d] = x1 - x
//
// and for the corner p with offset bits σ_d:
//
//	weight[p] = Π_d (σ_d == 1 ? lower[d] : upper[d]) / volume
//
// i.e. the normalized volume of the sub-box diagonally opposite corner p.
// Expanding Π_d (lower[d] + upper[d]) = volume shows the weights sum to 1.
// They are all >= 0 for coord inside the cell; outside it the same formula
// extrapolates linearly and some weights turn negative.
//
// Errors: ErrDimensionMismatch, ErrDegenerateCell.
// Complexity: O(2^D·D).
func (c *Cell) InterpolantAt(coord []float64) (Interpolant, error) {
	g := c.addr.grid
	if len(coord) != g.dim {
		return Interpolant{}, fmt.Errorf("Cell.InterpolantAt: len %d, dim %d: %w", len(coord), g.dim, ErrDimensionMismatch)
	}
	if c.volume == 0 {
		return Interpolant{}, fmt.Errorf("Cell.InterpolantAt: cell %s: %w", c.addr, ErrDegenerateCell)
	}

	lower := make([]float64, g.dim)
	upper := make([]float64, g.dim)
	for d, i := range c.addr.t {
		x := coord[d]
		lower[d] = x - g.data[d][i]
		upper[d] = g.data[d][i+1] - x
	}

	weights := make([]float64, len(g.perms))
	for p, perm := range g.perms {
		w := 1.0
		for d, bit := range perm {
			if bit == 1 {
				w *= lower[d]
			} else {
				w *= upper[d]
			}
		}
		weights[p] = w / c.volume
	}

	return Interpolant{weights: weights, vertices: append([]int(nil), c.vertices...)}, nil
}

// String renders the cell tuple.
func (c *Cell) String() string {
	return c.addr.String()
}

// Info renders "CELL[index|tuple] : volume = v".
func (c *Cell) Info() string {
	return fmt.Sprintf("CELL[%d|%s] : volume = %g", c.index, c.addr, c.volume)
}
