package gridio_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridio"
)

// ExampleLoadDocument evaluates a field stored next to its grid.
func ExampleLoadDocument() {
	doc, err := gridio.LoadDocument(strings.NewReader(`
[[dimension]]
label = "t"
values = [0.0, 10.0, 20.0]

[[field]]
name = "temperature"
values = [15.0, 25.0, 20.0]
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	temp, _ := doc.Field("temperature")
	_, ip, _ := grid.Evaluate(doc.Grid(), []float64{12.5})
	v, _ := ip.Lerp(temp)
	fmt.Printf("%s: %.2f\n", doc.Grid().Label(0), v)
	// Output:
	// t: 23.75
}

// ExampleEncode shows the size of a binary record.
func ExampleEncode() {
	g, _ := grid.New([][]float64{{0, 1, 2}, {0, 1}}, grid.WithLabels("u", "v"))

	var buf bytes.Buffer
	if err := gridio.Encode(&buf, g); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(buf.Len(), "bytes")

	back, _ := gridio.Decode(&buf)
	fmt.Println(back, back.Labels())
	// Output:
	// 62 bytes
	// GRID (dim = 2 | nodes = 6 | cells = 2) [u v]
}
