package gridio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridio"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const surfaceDoc = `
[[dimension]]
label = "x"
values = [0.0, 0.25, 1.0]

[[dimension]]
label = "y"
values = [0.0, 0.5, 1.0]

[[field]]
name = "Z"
values = [1.0, 2.0, 3.0, 4.0, 2.0, -3.0, 1.0, 2.0, 3.0]

[[field]]
name = "ones"
values = [1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0]
`

// TestLoadDocument checks grid construction and field lookup.
func TestLoadDocument(t *testing.T) {
	doc, err := gridio.LoadDocument(strings.NewReader(surfaceDoc), quiet())
	require.NoError(t, err)

	g := doc.Grid()
	require.NotNil(t, g)
	assert.Equal(t, []string{"x", "y"}, g.Labels())
	assert.Equal(t, 9, g.NodeTotal())
	assert.Equal(t, []string{"Z", "ones"}, doc.FieldNames())

	z, err := doc.Field("Z")
	require.NoError(t, err)
	_, ip, err := grid.Evaluate(g, []float64{0.1, 0.1})
	require.NoError(t, err)
	v, err := ip.Lerp(z)
	require.NoError(t, err)
	assert.InDelta(t, 1.76, v, 1e-12)

	z[0] = 100
	again, _ := doc.Field("Z")
	assert.Equal(t, 1.0, again[0], "Field returns a copy")

	_, err = doc.Field("W")
	require.ErrorIs(t, err, gridio.ErrFieldNotFound)
}

// TestLoadDocument_Errors covers invalid documents.
func TestLoadDocument_Errors(t *testing.T) {
	dim := "[[dimension]]\nvalues = [0.0, 1.0]\n"
	cases := []struct {
		name string
		doc  string
		opts []gridio.Option
		err  error
	}{
		{"NoDimensions", "", nil, grid.ErrNoDimensions},
		{"Unsorted", "[[dimension]]\nvalues = [1.0, 0.0]\n", nil, gridio.ErrUnsorted},
		{"Degenerate", "[[dimension]]\nvalues = [1.0]\n", nil, grid.ErrDegenerateDimension},
		{"FieldSize", dim + "[[field]]\nname = \"a\"\nvalues = [1.0]\n", nil, gridio.ErrFieldSize},
		{"FieldName", dim + "[[field]]\nvalues = [1.0, 2.0]\n", nil, gridio.ErrFieldName},
		{
			"DuplicateField",
			dim + "[[field]]\nname = \"a\"\nvalues = [1.0, 2.0]\n[[field]]\nname = \"a\"\nvalues = [3.0, 4.0]\n",
			nil,
			gridio.ErrDuplicateField,
		},
		{"TooManyDims", dim + dim + dim, []gridio.Option{gridio.WithMaxDimensions(2)}, gridio.ErrTooLarge},
		{"TooManyValues", "[[dimension]]\nvalues = [0.0, 1.0, 2.0]\n", []gridio.Option{gridio.WithMaxCount(2)}, gridio.ErrTooLarge},
		{"TooManyNodes", dim + dim, []gridio.Option{gridio.WithMaxNodes(3)}, gridio.ErrTooLarge},
		{"TooManyTableEntries", dim + dim, []gridio.Option{gridio.WithMaxTableEntries(13)}, gridio.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]gridio.Option{quiet()}, tc.opts...)
			doc, err := gridio.LoadDocument(strings.NewReader(tc.doc), opts...)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, doc)
		})
	}

	_, err := gridio.LoadDocument(strings.NewReader("[[dimension]\nvalues = "), quiet())
	require.Error(t, err, "syntax errors are reported")
}

// TestLoadDocument_UnknownKeys checks that unknown keys only warn.
func TestLoadDocument_UnknownKeys(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	doc, err := gridio.LoadDocument(strings.NewReader("units = \"m\"\n"+surfaceDoc), gridio.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Grid().Dim())

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == `gridio: ignoring unknown key "units"` {
			warned = true
		}
	}
	assert.True(t, warned)
}

// TestDocument_WriteLoad checks that a written document loads back equal.
func TestDocument_WriteLoad(t *testing.T) {
	g, err := grid.New([][]float64{{0, 1, 2}, {-1, 1}}, grid.WithLabels("t", ""))
	require.NoError(t, err)
	doc, err := gridio.NewDocument(g)
	require.NoError(t, err)
	require.NoError(t, doc.AddField("f", []float64{0.5, -1, 2, 3, 4.25, 1e-3}))

	var buf bytes.Buffer
	require.NoError(t, gridio.WriteDocument(&buf, doc))
	assert.Contains(t, buf.String(), "[[dimension]]")
	assert.Contains(t, buf.String(), "[[field]]")

	back, err := gridio.LoadDocument(&buf, quiet())
	require.NoError(t, err)
	assert.True(t, grid.SameData(g, back.Grid()))
	assert.True(t, grid.SameLabels(g, back.Grid()))
	f, err := back.Field("f")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1, 2, 3, 4.25, 1e-3}, f)
}

// TestDocument_AddFieldErrors covers field validation on a built document.
func TestDocument_AddFieldErrors(t *testing.T) {
	g, err := grid.New([][]float64{{0, 1}})
	require.NoError(t, err)
	doc, err := gridio.NewDocument(g)
	require.NoError(t, err)

	require.ErrorIs(t, doc.AddField("", []float64{1, 2}), gridio.ErrFieldName)
	require.ErrorIs(t, doc.AddField("a", []float64{1}), gridio.ErrFieldSize)
	require.NoError(t, doc.AddField("a", []float64{1, 2}))
	require.ErrorIs(t, doc.AddField("a", []float64{3, 4}), gridio.ErrDuplicateField)

	var zero gridio.Document
	require.ErrorIs(t, zero.AddField("a", []float64{1, 2}), grid.ErrNilGrid)

	_, err = gridio.NewDocument(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	require.ErrorIs(t, gridio.WriteDocument(&bytes.Buffer{}, nil), gridio.ErrNilDocument)
}
