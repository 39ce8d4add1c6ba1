// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for input checks shared by constructors and queries.
//  - Return sentinel errors wrapped with a validator tag so call sites stay uniform.
//
// Note:
//  - Validators are pure and deterministic; none of them mutate their input.

package grid

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateData checks raw per-dimension coordinates before any copy or sort.
// Sequence: empty -> per dimension (count -> finite).
// Complexity: O(Σ Nn[d]).
func validateData(data [][]float64) error {
	if len(data) == 0 {
		return validatorErrorf("validateData", ErrNoDimensions)
	}
	for d, values := range data {
		if len(values) < 2 {
			return validatorErrorf(fmt.Sprintf("validateData: dimension %d has %d value(s)", d, len(values)), ErrDegenerateDimension)
		}
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("validateData: data[%d][%d]", d, i), ErrNaNInf)
			}
		}
	}

	return nil
}

// validateSorted checks one already sorted dimension: it must span a
// non-empty interval and, when strict is set, hold no duplicates.
func validateSorted(d int, sorted []float64, strict bool) error {
	if sorted[0] == sorted[len(sorted)-1] {
		return validatorErrorf(fmt.Sprintf("validateSorted: dimension %d is constant", d), ErrDegenerateDimension)
	}
	if !strict {
		return nil
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return validatorErrorf(fmt.Sprintf("validateSorted: dimension %d value %g", d, sorted[i]), ErrDuplicateCoordinate)
		}
	}

	return nil
}

// validateLabels checks the label count against the dimension count.
// A nil label list is always accepted.
func validateLabels(labels []string, dim int) error {
	if labels != nil && len(labels) != dim {
		return validatorErrorf(fmt.Sprintf("validateLabels: %d labels for %d dimensions", len(labels), dim), ErrLabelCountMismatch)
	}

	return nil
}

// validateTuple checks that t has one in-range component per dimension
// of the given counts.
func validateTuple(t []int, counts []int) error {
	if len(t) != len(counts) {
		return validatorErrorf(fmt.Sprintf("validateTuple: len %d, dim %d", len(t), len(counts)), ErrDimensionMismatch)
	}
	for d, v := range t {
		if v < 0 || v >= counts[d] {
			return validatorErrorf(fmt.Sprintf("validateTuple: component %d = %d not in [0,%d)", d, v, counts[d]), ErrIndexOutOfBounds)
		}
	}

	return nil
}

// validateCoord checks a point coordinate vector against the grid dimension.
func validateCoord(coord []float64, dim int) error {
	if len(coord) != dim {
		return validatorErrorf(fmt.Sprintf("validateCoord: len %d, dim %d", len(coord), dim), ErrDimensionMismatch)
	}
	for d, v := range coord {
		if math.IsNaN(v) {
			return validatorErrorf(fmt.Sprintf("validateCoord: coord[%d]", d), ErrNaNCoordinate)
		}
	}

	return nil
}

// validateGrid rejects a nil grid.
func validateGrid(g *Grid) error {
	if g == nil {
		return validatorErrorf("validateGrid", ErrNilGrid)
	}

	return nil
}
