package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ExampleEvaluate interpolates a height field sampled at the nodes of a
// 3x3 grid:
//
//	y=1    1  2  3
//	y=0.5  4  2 -3
//	y=0    1  2  3
//	       x=0 0.25 1
func ExampleEvaluate() {
	g, err := grid.New([][]float64{{0, 0.25, 1}, {0, 0.5, 1}}, grid.WithLabels("x", "y"))
	if err != nil {
		fmt.Println(err)
		return
	}
	z := []float64{1, 2, 3, 4, 2, -3, 1, 2, 3}

	cell, ip, err := grid.Evaluate(g, []float64{0.1, 0.1})
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := ip.Lerp(z)

	fmt.Println("cell:", cell)
	fmt.Println("vertices:", ip.VerticesIndex())
	fmt.Printf("weights: %.2f\n", ip.Weights())
	fmt.Printf("z: %.2f\n", v)
	// Output:
	// cell: 0
	// vertices: [0 1 3 4]
	// weights: [0.48 0.32 0.12 0.08]
	// z: 1.76
}

// ExampleCartesianProduct joins a 1-D and a 2-D grid into a 3-D one.
func ExampleCartesianProduct() {
	a, _ := grid.New([][]float64{{0, 1, 2}}, grid.WithLabels("t"))
	b, _ := grid.New([][]float64{{0, 1}, {0, 1, 2, 3}}, grid.WithLabels("u", "v"))

	ab, err := grid.CartesianProduct(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ab)
	fmt.Println(ab.Labels())
	fmt.Println(ab.NodeCounts(), ab.CellCounts())
	// Output:
	// GRID (dim = 3 | nodes = 24 | cells = 6)
	// [t u v]
	// [3 2 4] [2 1 3]
}

// ExamplePoint_CellIndex shows that points are clamped into the domain.
func ExamplePoint_CellIndex() {
	g, _ := grid.New([][]float64{{0, 1, 2, 3}})

	for _, x := range []float64{-5, 0.5, 1, 1.5, 3, 7} {
		p, _ := grid.NewPoint(g, []float64{x})
		fmt.Printf("%5.1f -> %s in cell %d\n", x, p, p.CellIndex())
	}
	// Output:
	//  -5.0 -> (0.00) in cell 0
	//   0.5 -> (0.50) in cell 0
	//   1.0 -> (1.00) in cell 0
	//   1.5 -> (1.50) in cell 1
	//   3.0 -> (3.00) in cell 2
	//   7.0 -> (3.00) in cell 2
}

// ExampleGrid_Info prints the full report of a small 1-D grid.
func ExampleGrid_Info() {
	g, _ := grid.New([][]float64{{2, 0, 1}}, grid.WithLabels("x"))
	fmt.Println(g.Info())
	// Output:
	// GRID (dim = 1 | nodes = 3 | cells = 2)
	// ==========================
	// DATA[0|x] = (0.00, 1.00, 2.00)
	//
	// NODES
	// ==========================
	// NODE[0|(0)] = (0.00)
	// NODE[1|(1)] = (1.00)
	// NODE[2|(2)] = (2.00)
	//
	// CELLS
	// ==========================
	// CELL[0|(0)] : volume = 1
	// CELL[1|(1)] : volume = 1
	//
	// PERMUTATIONS
	// ==========================
	// PERM[0] = (0)
	// PERM[1] = (1)
}
