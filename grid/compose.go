package grid

import "fmt"

// CartesianProduct returns the grid whose dimension list is the ordered
// concatenation of the operands' dimensions (data and labels):
//
//	(I1{0}×…×I1{n-1}) × (I2{0}×…×I2{m-1}) = I1{0}×…×I1{n-1}×I2{0}×…×I2{m-1}
//
// This is dimension-list concatenation; node and cell totals of the result
// are the products of the operands' totals because bases are re-derived.
//
// Errors: ErrTooFewGrids (fewer than 2 operands), ErrNilGrid.
func CartesianProduct(grids ...*Grid) (*Grid, error) {
	if len(grids) < 2 {
		return nil, fmt.Errorf("CartesianProduct: %d operand(s): %w", len(grids), ErrTooFewGrids)
	}
	dim := 0
	for i, g := range grids {
		if err := validateGrid(g); err != nil {
			return nil, fmt.Errorf("CartesianProduct: operand %d: %w", i, err)
		}
		dim += g.dim
	}

	data := make([][]float64, 0, dim)
	labels := make([]string, 0, dim)
	for _, g := range grids {
		data = append(data, g.Data()...)
		labels = append(labels, g.labels...)
	}

	return build(data, labels), nil
}

// Product is the binary form of CartesianProduct: g × other.
// Errors: ErrNilGrid.
func (g *Grid) Product(other *Grid) (*Grid, error) {
	return CartesianProduct(g, other)
}

// DeepCopy returns an independent Grid with copied coordinates and labels.
func (g *Grid) DeepCopy() *Grid {
	return build(g.Data(), g.Labels())
}

// Normalize returns a new Grid whose coordinates are mapped into [0,1] by
// each dimension's interval. Labels are kept. Since every coordinate lies
// in its own interval the mapping cannot fail, and order is preserved.
func (g *Grid) Normalize() *Grid {
	data := make([][]float64, g.dim)
	for d, values := range g.data {
		data[d] = make([]float64, len(values))
		iv := g.intervals[d]
		for i, v := range values {
			data[d][i] = (v - iv.T0()) / iv.Length()
		}
	}

	return build(data, g.Labels())
}

// SameData reports whether a and b hold identical coordinate arrays.
// Host layers use it to detect that cached per-grid state is stale.
// Two nil grids are equal; a nil and a non-nil grid are not.
func SameData(a, b *Grid) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dim != b.dim {
		return false
	}
	for d := range a.data {
		if len(a.data[d]) != len(b.data[d]) {
			return false
		}
		for i := range a.data[d] {
			if a.data[d][i] != b.data[d][i] {
				return false
			}
		}
	}

	return true
}

// SameLabels reports whether a and b have the same dimension count and labels.
func SameLabels(a, b *Grid) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dim != b.dim {
		return false
	}
	for d := range a.labels {
		if a.labels[d] != b.labels[d] {
			return false
		}
	}

	return true
}
