package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgrid/tuple"
)

// String returns a one-line summary: "GRID (dim = D | nodes = N | cells = C)".
func (g *Grid) String() string {
	return fmt.Sprintf("GRID (dim = %d | nodes = %d | cells = %d)", g.dim, len(g.nodes), len(g.cells))
}

// Info returns a detailed multi-line report: the coordinates of every
// dimension (with its label when set), then every node, cell and corner
// permutation in index order.
// Complexity: O(nodeTotal·D + cellTotal + 2^D·D).
func (g *Grid) Info() string {
	const rule = "=========================="
	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("%s", g.String())
	line(rule)
	for d, values := range g.data {
		if g.labels[d] != "" {
			line("DATA[%d|%s] = %s", d, g.labels[d], formatCoord(values))
		} else {
			line("DATA[%d] = %s", d, formatCoord(values))
		}
	}

	line("")
	line("NODES")
	line(rule)
	for _, n := range g.nodes {
		line("%s", n.Info())
	}

	line("")
	line("CELLS")
	line(rule)
	for _, c := range g.cells {
		line("%s", c.Info())
	}

	line("")
	line("PERMUTATIONS")
	line(rule)
	for p, perm := range g.perms {
		line("PERM[%d] = %s", p, tuple.Format(perm))
	}

	return strings.TrimRight(sb.String(), "\n")
}
