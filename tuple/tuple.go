package tuple

import (
	"fmt"
	"strconv"
	"strings"
)

// Basis returns the mixed-radix multipliers for the given counts:
// basis[0] = 1 and basis[d] = basis[d-1]·counts[d-1].
// Complexity: O(D).
func Basis(counts []int) []int {
	basis := make([]int, len(counts))
	if len(counts) == 0 {
		return basis
	}
	basis[0] = 1
	for d := 1; d < len(counts); d++ {
		basis[d] = basis[d-1] * counts[d-1]
	}

	return basis
}

// Total returns Π counts, the number of tuples addressed by counts.
// An empty count list addresses nothing and yields 0.
func Total(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	n := 1
	for _, c := range counts {
		n *= c
	}

	return n
}

// ToIndex computes the contiguous index of t as the dot product with basis.
// It performs no division and no bounds checking; t and basis are assumed
// to have the same length.
// Complexity: O(D).
func ToIndex(t, basis []int) int {
	index := 0
	for d := range t {
		index += basis[d] * t[d]
	}

	return index
}

// ToIndexCounts is ToIndex with the basis derived from counts.
func ToIndexCounts(t, counts []int) int {
	return ToIndex(t, Basis(counts))
}

// FromIndex decodes index into a tuple for the given counts.
//
// The index is divided by counts[0], counts[1], ... in turn; every remainder
// becomes one tuple component and the most significant dimension receives
// the final quotient. FromIndex is the exact left inverse of ToIndexCounts.
//
// Errors: ErrEmpty, ErrInvalidCount, ErrIndexOutOfBounds.
// Complexity: O(D).
func FromIndex(index int, counts []int) ([]int, error) {
	if err := validateCounts(counts); err != nil {
		return nil, err
	}
	if index < 0 || index >= Total(counts) {
		return nil, fmt.Errorf("FromIndex(%d): %w", index, ErrIndexOutOfBounds)
	}

	n := len(counts)
	t := make([]int, n)
	q := index
	for d := 0; d < n-1; d++ {
		t[d] = q % counts[d]
		q /= counts[d]
	}
	t[n-1] = q

	return t, nil
}

// Add returns the element-wise sum a + b as a new tuple.
// Errors: ErrDimensionMismatch if the lengths differ.
func Add(a, b []int) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Add: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	sum := make([]int, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}

	return sum, nil
}

// CartesianProduct concatenates the given tuples in call order.
// (a0, …, a{n-1}) × (b0, …, b{m-1}) = (a0, …, a{n-1}, b0, …, b{m-1}).
func CartesianProduct(ts ...[]int) []int {
	n := 0
	for _, t := range ts {
		n += len(t)
	}
	out := make([]int, 0, n)
	for _, t := range ts {
		out = append(out, t...)
	}

	return out
}

// Partition splits t into contiguous sub-tuples at 1-based cut positions.
//
// A cut c separates t[:c] from t[c:], so every cut must lie in [1, len(t)-1]
// and cuts must be strictly increasing; otherwise a segment would be empty.
// With no cuts the result is a single copy of t.
//
// Example: Partition([a b c d e], 2, 3) = [[a b] [c] [d e]].
//
// Errors: ErrEmpty, ErrInvalidPartition.
func Partition(t []int, cuts ...int) ([][]int, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("Partition: %w", ErrEmpty)
	}
	prev := 0
	for _, c := range cuts {
		if c < 1 || c > len(t)-1 || c <= prev {
			return nil, fmt.Errorf("Partition: cut %d of len %d: %w", c, len(t), ErrInvalidPartition)
		}
		prev = c
	}

	parts := make([][]int, 0, len(cuts)+1)
	start := 0
	for _, c := range append(append([]int(nil), cuts...), len(t)) {
		seg := make([]int, c-start)
		copy(seg, t[start:c])
		parts = append(parts, seg)
		start = c
	}

	return parts, nil
}

// Compare orders a and b starting from the most significant (last)
// dimension down to dimension 0. It returns -1 if a < b, +1 if a > b and 0
// if they are equal. For tuples of one table this is the order of their
// contiguous indices.
// Errors: ErrDimensionMismatch if the lengths differ.
func Compare(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Compare: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	for d := len(a) - 1; d >= 0; d-- {
		switch {
		case a[d] < b[d]:
			return -1, nil
		case a[d] > b[d]:
			return 1, nil
		}
	}

	return 0, nil
}

// Equal reports whether a and b have the same length and components.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Format renders t as "(i0, i1, ..., i{D-1})".
func Format(t []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')

	return sb.String()
}

// validateCounts checks that counts is non-empty and every count is >= 1.
func validateCounts(counts []int) error {
	if len(counts) == 0 {
		return ErrEmpty
	}
	for d, c := range counts {
		if c < 1 {
			return fmt.Errorf("dimension %d has count %d: %w", d, c, ErrInvalidCount)
		}
	}

	return nil
}
