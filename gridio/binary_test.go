package gridio_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridio"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stream assembles a little-endian binary record from int32, []byte and
// []float64 parts.
func stream(t *testing.T, parts ...any) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	for _, p := range parts {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, p))
	}

	return buf
}

func nan() float64 { return math.NaN() }

// quiet is a logger that discards everything.
func quiet() gridio.Option {
	l, _ := logtest.NewNullLogger()
	return gridio.WithLogger(l)
}

// TestEncode_Layout checks the exact bytes of a 1-D labelled grid.
func TestEncode_Layout(t *testing.T) {
	g, err := grid.New([][]float64{{1, 0}}, grid.WithLabels("x"))
	require.NoError(t, err)

	var got bytes.Buffer
	require.NoError(t, gridio.Encode(&got, g))

	want := stream(t, int32(1), int32(2), int32(1), []byte("x"), []float64{0, 1})
	assert.Equal(t, want.Bytes(), got.Bytes())
	assert.Equal(t, 4+4+4+1+16, got.Len())
}

// TestRoundTrip checks that Decode(Encode(g)) rebuilds an equal grid.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		data   [][]float64
		labels []string
	}{
		{"OneDim", [][]float64{{0, 1, 2, 3}}, []string{""}},
		{"Labelled", [][]float64{{0, 0.25, 1}, {0, 0.5, 1}}, []string{"angle", "depth"}},
		{"Unicode", [][]float64{{-1, 1}, {2, 3}, {5, 7, 11}}, []string{"θ", "", "höhe"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.data, grid.WithLabels(tc.labels...))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, gridio.Encode(&buf, g))
			back, err := gridio.Decode(&buf, quiet())
			require.NoError(t, err)

			assert.True(t, grid.SameData(g, back))
			assert.True(t, grid.SameLabels(g, back))
			assert.Equal(t, g.NodeTotal(), back.NodeTotal())
			assert.Zero(t, buf.Len(), "the whole record is consumed")
		})
	}
}

// TestDecode_Sorts checks that unsorted streams are rebuilt through grid.New.
func TestDecode_Sorts(t *testing.T) {
	in := stream(t, int32(1), int32(3), int32(0), []float64{2, 0, 1})
	g, err := gridio.Decode(in, quiet())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}}, g.Data())
}

// TestDecode_Errors covers malformed and oversized streams.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name  string
		parts []any
		opts  []gridio.Option
		err   error
	}{
		{"Empty", nil, nil, gridio.ErrTruncated},
		{"NegativeDim", []any{int32(-1)}, nil, gridio.ErrNegativeCount},
		{"ZeroDim", []any{int32(0)}, nil, grid.ErrNoDimensions},
		{"NegativeCount", []any{int32(1), int32(-2)}, nil, gridio.ErrNegativeCount},
		{"NegativeLabel", []any{int32(1), int32(2), int32(-1)}, nil, gridio.ErrNegativeCount},
		{"SingleValue", []any{int32(1), int32(1), int32(0), []float64{4}}, nil, grid.ErrDegenerateDimension},
		{"TooManyDims", []any{int32(3)}, []gridio.Option{gridio.WithMaxDimensions(2)}, gridio.ErrTooLarge},
		{"TooManyValues", []any{int32(1), int32(3)}, []gridio.Option{gridio.WithMaxCount(2)}, gridio.ErrTooLarge},
		{
			"TooManyNodes",
			[]any{int32(2), int32(2), int32(0), []float64{0, 1}, int32(2)},
			[]gridio.Option{gridio.WithMaxNodes(3)},
			gridio.ErrTooLarge,
		},
		{"HugeLabel", []any{int32(1), int32(2), int32(1 << 20)}, nil, gridio.ErrTooLarge},
		{"InvalidLabel", []any{int32(1), int32(2), int32(1), []byte{0xff}}, nil, gridio.ErrInvalidLabel},
		{"TruncatedLabel", []any{int32(1), int32(2), int32(4), []byte("ab")}, nil, gridio.ErrTruncated},
		{"TruncatedValues", []any{int32(1), int32(3), int32(0), []float64{0, 1}}, nil, gridio.ErrTruncated},
		{"NaN", []any{int32(1), int32(2), int32(0), []float64{0, nan()}}, nil, grid.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]gridio.Option{quiet()}, tc.opts...)
			g, err := gridio.Decode(stream(t, tc.parts...), opts...)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestDecode_TableBudget feeds a small stream whose header describes a
// 16-D grid with millions of nodes and 65536 corners per cell.
func TestDecode_TableBudget(t *testing.T) {
	parts := []any{int32(16)}
	for d := 0; d < 16; d++ {
		values := []float64{0, 1}
		if d < 8 {
			values = []float64{0, 1, 2}
		}
		parts = append(parts, int32(len(values)), int32(0), values)
	}
	in := stream(t, parts...)
	require.Less(t, in.Len(), 512)

	g, err := gridio.Decode(in, quiet())
	require.ErrorIs(t, err, gridio.ErrTooLarge)
	assert.Nil(t, g)

	// a 2x2 grid needs 4·4 node entries and 1·6 cell entries
	small := func() *bytes.Buffer {
		return stream(t, int32(2), int32(2), int32(0), []float64{0, 1}, int32(2), int32(0), []float64{0, 1})
	}
	_, err = gridio.Decode(small(), quiet(), gridio.WithMaxTableEntries(21))
	require.ErrorIs(t, err, gridio.ErrTooLarge)
	_, err = gridio.Decode(small(), quiet(), gridio.WithMaxTableEntries(22))
	require.NoError(t, err)
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestEncode_Errors covers nil grids, writer failures and labels Decode
// would refuse.
func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, gridio.Encode(&buf, nil), grid.ErrNilGrid)
	assert.Zero(t, buf.Len())

	g, err := grid.New([][]float64{{0, 1}})
	require.NoError(t, err)
	require.ErrorIs(t, gridio.Encode(failWriter{}, g), errWrite)

	long, err := grid.New([][]float64{{0, 1}}, grid.WithLabels(strings.Repeat("a", gridio.DefaultMaxLabelBytes+1)))
	require.NoError(t, err)
	buf.Reset()
	require.ErrorIs(t, gridio.Encode(&buf, long), gridio.ErrTooLarge)
	assert.Zero(t, buf.Len(), "nothing is written for an unreadable label")

	edge, err := grid.New([][]float64{{0, 1}}, grid.WithLabels(strings.Repeat("a", gridio.DefaultMaxLabelBytes)))
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, gridio.Encode(&buf, edge))
	back, err := gridio.Decode(&buf, quiet())
	require.NoError(t, err)
	assert.True(t, grid.SameLabels(edge, back))
}

// TestDecode_Logs checks the debug entry emitted per decoded grid.
func TestDecode_Logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	in := stream(t, int32(2), int32(3), int32(0), []float64{0, 1, 2}, int32(2), int32(1), []byte("y"), []float64{0, 1})
	_, err := gridio.Decode(in, gridio.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "gridio: decoded grid", entry.Message)
	assert.Equal(t, 6, entry.Data["nodes"])
	assert.Equal(t, 2, entry.Data["cells"])
}
