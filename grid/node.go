package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a grid vertex: a point pinned to a discrete grid position.
// coord[d] = data[d][tuple[d]]. Nodes are created once while the Grid is
// populated and are never mutated.
type Node struct {
	addr  Address
	index int
	coord []float64
}

// newNode builds the node at tuple t; index is the enumeration position,
// equal to the node-basis dot product of t.
func newNode(g *Grid, t []int, index int) *Node {
	coord := make([]float64, len(t))
	for d, i := range t {
		coord[d] = g.data[d][i]
	}

	return &Node{
		addr:  newAddress(g, KindNode, t),
		index: index,
		coord: coord,
	}
}

// Address returns the node address (KindNode).
func (n *Node) Address() Address { return n.addr }

// Index returns the contiguous node index.
func (n *Node) Index() int { return n.index }

// Dim returns the node dimension.
func (n *Node) Dim() int { return len(n.coord) }

// Coord returns a copy of the node coordinates.
func (n *Node) Coord() []float64 { return append([]float64(nil), n.coord...) }

// At returns coordinate d. It panics if d is out of range.
func (n *Node) At(d int) float64 { return n.coord[d] }

// String renders the coordinates as "(x0, x1, ...)" with two decimals.
func (n *Node) String() string {
	return formatCoord(n.coord)
}

// Info renders "NODE[index|tuple] = coordinates".
func (n *Node) Info() string {
	return fmt.Sprintf("NODE[%d|%s] = %s", n.index, n.addr, formatCoord(n.coord))
}

// formatCoord renders a float vector as "(x0, x1, ...)" with two decimals.
func formatCoord(coord []float64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range coord {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', 2, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
