package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
)

// benchData returns D dimensions of n evenly spaced values in [0,1].
func benchData(dim, n int) [][]float64 {
	data := make([][]float64, dim)
	for d := range data {
		data[d] = make([]float64, n)
		for i := range data[d] {
			data[d][i] = float64(i) / float64(n-1)
		}
	}

	return data
}

// BenchmarkNew_3D measures construction of a 32^3 grid (tables included).
func BenchmarkNew_3D(b *testing.B) {
	data := benchData(3, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.New(data)
	}
}

// BenchmarkEvaluate_3D measures one per-frame evaluation on a 32^3 grid.
func BenchmarkEvaluate_3D(b *testing.B) {
	g, err := grid.New(benchData(3, 32))
	if err != nil {
		b.Fatal(err)
	}
	field := make([]float64, g.NodeTotal())
	for i := range field {
		field[i] = float64(i)
	}
	coord := []float64{0.37, 0.61, 0.05}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ip, _ := grid.Evaluate(g, coord)
		_, _ = ip.Lerp(field)
	}
}

// BenchmarkInterpolant_6D measures weight computation with 64 corners.
func BenchmarkInterpolant_6D(b *testing.B) {
	g, err := grid.New(benchData(6, 4))
	if err != nil {
		b.Fatal(err)
	}
	p, _ := grid.NewPoint(g, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	c := p.Cell()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Interpolant(p)
	}
}
