package grid

import "fmt"

// Evaluate is the stateless per-frame entry point for host layers: it
// legalizes a copy of coord against g, locates the enclosing cell and
// returns that cell's index with the point's Interpolant. coord itself is
// not modified and no Point outlives the call.
//
// Errors: ErrNilGrid, ErrDimensionMismatch, ErrNaNCoordinate, ErrDegenerateCell.
func Evaluate(g *Grid, coord []float64) (int, Interpolant, error) {
	p, err := NewPoint(g, coord)
	if err != nil {
		return -1, Interpolant{}, fmt.Errorf("Evaluate: %w", err)
	}
	cell := p.Cell()
	ip, err := cell.Interpolant(p)
	if err != nil {
		return cell.index, Interpolant{}, fmt.Errorf("Evaluate: %w", err)
	}

	return cell.index, ip, nil
}
