package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Interpolant is a precomputed pair (weights, verticesIndex) produced by a
// Cell for one point. weights[p] applies to the node verticesIndex[p].
// It is an immutable value with no reference to its Grid, so it can be
// applied to any field sampled at the grid's nodes.
type Interpolant struct {
	weights  []float64
	vertices []int
}

// NewInterpolant builds an Interpolant from explicit weights and node
// indices, e.g. when restoring one computed elsewhere. Both slices are copied.
// Errors: ErrDimensionMismatch (length differ), ErrIndexOutOfBounds (negative index).
func NewInterpolant(weights []float64, vertices []int) (Interpolant, error) {
	if len(weights) != len(vertices) {
		return Interpolant{}, fmt.Errorf("NewInterpolant: %d weights, %d vertices: %w", len(weights), len(vertices), ErrDimensionMismatch)
	}
	for p, v := range vertices {
		if v < 0 {
			return Interpolant{}, fmt.Errorf("NewInterpolant: vertex %d = %d: %w", p, v, ErrIndexOutOfBounds)
		}
	}

	return Interpolant{
		weights:  append([]float64(nil), weights...),
		vertices: append([]int(nil), vertices...),
	}, nil
}

// Len returns the number of (weight, vertex) pairs, 2^D for a cell interpolant.
func (ip Interpolant) Len() int { return len(ip.weights) }

// Weights returns a copy of the weights.
func (ip Interpolant) Weights() []float64 { return append([]float64(nil), ip.weights...) }

// VerticesIndex returns a copy of the node indices.
func (ip Interpolant) VerticesIndex() []int { return append([]int(nil), ip.vertices...) }

// Sum returns Σ weights; 1 up to rounding for a cell interpolant.
func (ip Interpolant) Sum() float64 { return floats.Sum(ip.weights) }

// checkFieldLen verifies that a field of n samples covers every vertex.
func (ip Interpolant) checkFieldLen(n int) error {
	for p, v := range ip.vertices {
		if v >= n {
			return fmt.Errorf("vertex[%d] = %d, field length %d: %w", p, v, n, ErrIndexOutOfBounds)
		}
	}

	return nil
}

// Lerp interpolates a scalar field sampled at nodes:
// Σ_p weight[p]·field[verticesIndex[p]].
// Errors: ErrIndexOutOfBounds if the field is shorter than required.
func (ip Interpolant) Lerp(field []float64) (float64, error) {
	if err := ip.checkFieldLen(len(field)); err != nil {
		return 0, fmt.Errorf("Interpolant.Lerp: %w", err)
	}
	values := make([]float64, len(ip.vertices))
	for p, v := range ip.vertices {
		values[p] = field[v]
	}

	return floats.Dot(ip.weights, values), nil
}

// LerpVector interpolates a vector field given as one k-vector per node,
// component by component. Only the rows used by the interpolant are read;
// they must all have the same length.
// Errors: ErrIndexOutOfBounds, ErrDimensionMismatch.
func (ip Interpolant) LerpVector(field [][]float64) ([]float64, error) {
	if err := ip.checkFieldLen(len(field)); err != nil {
		return nil, fmt.Errorf("Interpolant.LerpVector: %w", err)
	}
	if len(ip.vertices) == 0 {
		return nil, nil
	}
	k := len(field[ip.vertices[0]])
	out := make([]float64, k)
	for p, v := range ip.vertices {
		row := field[v]
		if len(row) != k {
			return nil, fmt.Errorf("Interpolant.LerpVector: row %d has %d components, want %d: %w", v, len(row), k, ErrDimensionMismatch)
		}
		floats.AddScaled(out, ip.weights[p], row)
	}

	return out, nil
}

// LerpDense interpolates a vector field stored as a matrix with one row per
// node and one column per component.
// Errors: ErrDimensionMismatch for a nil matrix, ErrIndexOutOfBounds if the
// matrix has too few rows.
func (ip Interpolant) LerpDense(field mat.Matrix) ([]float64, error) {
	if field == nil {
		return nil, fmt.Errorf("Interpolant.LerpDense: nil matrix: %w", ErrDimensionMismatch)
	}
	rows, cols := field.Dims()
	if err := ip.checkFieldLen(rows); err != nil {
		return nil, fmt.Errorf("Interpolant.LerpDense: %w", err)
	}
	out := make([]float64, cols)
	row := make([]float64, cols)
	for p, v := range ip.vertices {
		mat.Row(row, v, field)
		floats.AddScaled(out, ip.weights[p], row)
	}

	return out, nil
}

// LerpFields interpolates several scalar fields at once; out[i] is
// Lerp(fields[i]).
// Errors: the first field error, wrapped with its position.
func (ip Interpolant) LerpFields(fields [][]float64) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := ip.Lerp(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Dominant returns the position p of the largest weight, i.e. the corner the
// point is closest to in the multilinear sense, and that weight.
// It returns (-1, 0) for an empty Interpolant.
func (ip Interpolant) Dominant() (int, float64) {
	if len(ip.weights) == 0 {
		return -1, 0
	}
	p := floats.MaxIdx(ip.weights)

	return p, ip.weights[p]
}
