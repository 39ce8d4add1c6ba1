package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlgrid/tuple"
)

// Point is a continuous coordinate vector inside a Grid's domain.
//
// Coordinates are clamped (legalized) into each dimension's interval on
// construction and whenever they are re-set, so a Point obtained from this
// package is always legal. Point is the only mutable type of the package and
// is not safe for concurrent mutation; the Grid it refers to must outlive it.
type Point struct {
	grid  *Grid
	coord []float64
}

// NewPoint copies coord, checks it against g and legalizes it in place.
// Errors: ErrNilGrid, ErrDimensionMismatch, ErrNaNCoordinate.
func NewPoint(g *Grid, coord []float64) (*Point, error) {
	if err := validateGrid(g); err != nil {
		return nil, fmt.Errorf("NewPoint: %w", err)
	}
	if err := validateCoord(coord, g.dim); err != nil {
		return nil, fmt.Errorf("NewPoint: %w", err)
	}
	p := &Point{grid: g, coord: append([]float64(nil), coord...)}
	p.Legalize()

	return p, nil
}

// Origin returns the point at the lower corner of g's domain.
func Origin(g *Grid) (*Point, error) {
	if err := validateGrid(g); err != nil {
		return nil, fmt.Errorf("Origin: %w", err)
	}
	coord := make([]float64, g.dim)
	for d, iv := range g.intervals {
		coord[d] = iv.T0()
	}

	return &Point{grid: g, coord: coord}, nil
}

// Grid returns the grid this point belongs to.
func (p *Point) Grid() *Grid { return p.grid }

// Dim returns the point dimension.
func (p *Point) Dim() int { return len(p.coord) }

// Coord returns a copy of the coordinates.
func (p *Point) Coord() []float64 { return append([]float64(nil), p.coord...) }

// At returns coordinate d. It panics if d is out of range.
func (p *Point) At(d int) float64 { return p.coord[d] }

// Set replaces coordinate d with v clamped into dimension d's interval.
// Errors: ErrIndexOutOfBounds, ErrNaNCoordinate.
func (p *Point) Set(d int, v float64) error {
	if d < 0 || d >= len(p.coord) {
		return fmt.Errorf("Point.Set(%d): %w", d, ErrIndexOutOfBounds)
	}
	if math.IsNaN(v) {
		return fmt.Errorf("Point.Set(%d): %w", d, ErrNaNCoordinate)
	}
	p.coord[d] = p.grid.intervals[d].Legalize(v)

	return nil
}

// SetCoord replaces every coordinate and legalizes the result. On error the
// point is left unchanged.
// Errors: ErrDimensionMismatch, ErrNaNCoordinate.
func (p *Point) SetCoord(coord []float64) error {
	if err := validateCoord(coord, len(p.coord)); err != nil {
		return fmt.Errorf("Point.SetCoord: %w", err)
	}
	copy(p.coord, coord)
	p.Legalize()

	return nil
}

// Legalize clamps every coordinate into its dimension's interval, in place.
// Legalize is idempotent.
func (p *Point) Legalize() {
	for d, iv := range p.grid.intervals {
		p.coord[d] = iv.Legalize(p.coord[d])
	}
}

// IsLegal reports whether every coordinate lies within its interval.
func (p *Point) IsLegal() bool {
	for d, iv := range p.grid.intervals {
		if !iv.IsLegal(p.coord[d]) {
			return false
		}
	}

	return true
}

// Normalized maps the point into [0,1]^D. The result is a plain vector, not
// a Point, since it generally lies outside the grid's domain.
// Errors: wraps interval.ErrOutOfRange for an illegal point.
func (p *Point) Normalized() ([]float64, error) {
	out := make([]float64, len(p.coord))
	for d, iv := range p.grid.intervals {
		v, err := iv.Normalize(p.coord[d])
		if err != nil {
			return nil, fmt.Errorf("Point.Normalized: dimension %d: %w", d, err)
		}
		out[d] = v
	}

	return out, nil
}

// CellTuple returns the tuple of the cell enclosing the point. In each
// dimension it picks the smallest i with coord[d] <= data[d][i]; the cell
// component is i-1, clamped to [0, cellCount[d]-1] so that both domain
// boundaries map onto the first and last cells. Zero-width cells left by
// duplicated coordinates are then skipped forward, so a legal point always
// lands in a cell of positive width along every dimension.
// Complexity: O(D·log max(Nn)) plus the length of any run of duplicates.
func (p *Point) CellTuple() []int {
	g := p.grid
	t := make([]int, g.dim)
	for d, x := range p.coord {
		i := sort.SearchFloat64s(g.data[d], x) - 1
		if i < 0 {
			i = 0
		}
		if i > g.cellCount[d]-1 {
			i = g.cellCount[d] - 1
		}
		// x equals both bounds of a zero-width cell: take the next one
		for i < g.cellCount[d]-1 && g.data[d][i+1] == g.data[d][i] {
			i++
		}
		t[d] = i
	}

	return t
}

// CellIndex returns the contiguous index of the cell enclosing the point.
func (p *Point) CellIndex() int {
	return tuple.ToIndex(p.CellTuple(), p.grid.cellBasis)
}

// Cell returns the cell enclosing the point.
func (p *Point) Cell() *Cell {
	return p.grid.cells[p.CellIndex()]
}

// Interpolant returns the multilinear weights of the point in its cell.
// Errors: ErrDegenerateCell.
func (p *Point) Interpolant() (Interpolant, error) {
	return p.Cell().Interpolant(p)
}

// String renders the coordinates with two decimals.
func (p *Point) String() string {
	return formatCoord(p.coord)
}
