package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/tuple"
)

// Kind selects which table of a Grid an Address refers to.
type Kind int

const (
	// KindNode addresses a grid vertex; indices use the node basis.
	KindNode Kind = iota
	// KindCell addresses a grid cell; indices use the cell basis.
	KindCell
)

// String returns "node" or "cell".
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindCell:
		return "cell"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Address is a D-dimensional integer position bound to a Grid.
// The only behavior that depends on Kind is the basis used by Index.
// Addresses are immutable values; the Grid must outlive them.
type Address struct {
	grid *Grid
	kind Kind
	t    []int
}

// newAddress builds an Address owning a private copy of t. No validation.
func newAddress(g *Grid, kind Kind, t []int) Address {
	cp := make([]int, len(t))
	copy(cp, t)

	return Address{grid: g, kind: kind, t: cp}
}

// Grid returns the grid this address belongs to.
func (a Address) Grid() *Grid { return a.grid }

// Kind returns KindNode or KindCell.
func (a Address) Kind() Kind { return a.kind }

// Dim returns the tuple length.
func (a Address) Dim() int { return len(a.t) }

// Tuple returns a copy of the integer tuple.
func (a Address) Tuple() []int {
	cp := make([]int, len(a.t))
	copy(cp, a.t)

	return cp
}

// At returns component d of the tuple. It panics if d is out of range,
// like a slice index.
func (a Address) At(d int) int { return a.t[d] }

// Index returns the contiguous index: Σ basis[d]·tuple[d], with the node or
// cell basis according to Kind.
// Complexity: O(D).
func (a Address) Index() int {
	if a.kind == KindCell {
		return tuple.ToIndex(a.t, a.grid.cellBasis)
	}

	return tuple.ToIndex(a.t, a.grid.nodeBasis)
}

// Add returns the element-wise sum of the tuple and offset, e.g. a cell base
// tuple plus a corner permutation.
// Errors: ErrDimensionMismatch.
func (a Address) Add(offset []int) ([]int, error) {
	sum, err := tuple.Add(a.t, offset)
	if err != nil {
		return nil, fmt.Errorf("Address.Add: %w", ErrDimensionMismatch)
	}

	return sum, nil
}

// Compare orders two addresses of the same dimension from the last
// dimension down to the first (see tuple.Compare).
// Errors: ErrDimensionMismatch.
func (a Address) Compare(b Address) (int, error) {
	c, err := tuple.Compare(a.t, b.t)
	if err != nil {
		return 0, fmt.Errorf("Address.Compare: %w", ErrDimensionMismatch)
	}

	return c, nil
}

// String renders the tuple as "(i0, i1, ...)".
func (a Address) String() string {
	return tuple.Format(a.t)
}
