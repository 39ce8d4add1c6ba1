package gridio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/sirupsen/logrus"
)

// byteOrder is the byte order of every binary record.
var byteOrder = binary.LittleEndian

// Encode writes the coordinates and labels of g to w in the binary layout.
// Nothing is written for a label longer than DefaultMaxLabelBytes, since
// Decode would refuse it.
// Errors: grid.ErrNilGrid, ErrTooLarge (label beyond DefaultMaxLabelBytes,
// count beyond int32), and any write error of w.
func Encode(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("gridio.Encode: %w", grid.ErrNilGrid)
	}
	for d, label := range g.Labels() {
		if len(label) > DefaultMaxLabelBytes {
			return fmt.Errorf("gridio.Encode: dimension %d label of %d bytes > %d: %w", d, len(label), DefaultMaxLabelBytes, ErrTooLarge)
		}
	}
	if err := writeInt32(w, g.Dim()); err != nil {
		return fmt.Errorf("gridio.Encode: dimension count: %w", err)
	}
	for d, values := range g.Data() {
		label := g.Label(d)
		if err := writeInt32(w, len(values)); err != nil {
			return fmt.Errorf("gridio.Encode: dimension %d count: %w", d, err)
		}
		if err := writeInt32(w, len(label)); err != nil {
			return fmt.Errorf("gridio.Encode: dimension %d label: %w", d, err)
		}
		if _, err := io.WriteString(w, label); err != nil {
			return fmt.Errorf("gridio.Encode: dimension %d label: %w", d, err)
		}
		if err := binary.Write(w, byteOrder, values); err != nil {
			return fmt.Errorf("gridio.Encode: dimension %d values: %w", d, err)
		}
	}

	return nil
}

// Decode reads one grid in the binary layout from r and rebuilds it with
// grid.New. Every count is checked against the limits before anything is
// allocated.
//
// Errors: ErrNegativeCount, ErrTooLarge, ErrTruncated, ErrInvalidLabel and
// wrapped grid construction errors (e.g. grid.ErrNoDimensions for D = 0).
func Decode(r io.Reader, opts ...Option) (*grid.Grid, error) {
	o := gatherOptions(opts...)

	dim, err := readCount(r, "dimension count", o.maxDimensions)
	if err != nil {
		return nil, fmt.Errorf("gridio.Decode: %w", err)
	}

	data := make([][]float64, dim)
	labels := make([]string, dim)
	budget := o.newTableBudget(dim)
	for d := 0; d < dim; d++ {
		count, err := readCount(r, fmt.Sprintf("dimension %d count", d), o.maxCount)
		if err != nil {
			return nil, fmt.Errorf("gridio.Decode: %w", err)
		}
		if !budget.add(count) {
			return nil, fmt.Errorf("gridio.Decode: dimension %d: grid tables beyond %d nodes or %d entries: %w",
				d, o.maxNodes, o.maxTableEntries, ErrTooLarge)
		}

		size, err := readCount(r, fmt.Sprintf("dimension %d label", d), o.maxLabelBytes)
		if err != nil {
			return nil, fmt.Errorf("gridio.Decode: %w", err)
		}
		raw := make([]byte, size)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("gridio.Decode: dimension %d label: %w", d, readErr(err))
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("gridio.Decode: dimension %d: %w", d, ErrInvalidLabel)
		}
		labels[d] = string(raw)

		data[d] = make([]float64, count)
		if err := binary.Read(r, byteOrder, data[d]); err != nil {
			return nil, fmt.Errorf("gridio.Decode: dimension %d values: %w", d, readErr(err))
		}
	}

	g, err := grid.New(data, grid.WithLabels(labels...))
	if err != nil {
		return nil, fmt.Errorf("gridio.Decode: %w", err)
	}
	o.logger.WithFields(logrus.Fields{
		"dim":   g.Dim(),
		"nodes": g.NodeTotal(),
		"cells": g.CellTotal(),
	}).Debug("gridio: decoded grid")

	return g, nil
}

// writeInt32 writes n as a little-endian int32.
func writeInt32(w io.Writer, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%d: %w", n, ErrTooLarge)
	}

	return binary.Write(w, byteOrder, int32(n))
}

// readCount reads a non-negative int32 no larger than limit.
func readCount(r io.Reader, what string, limit int) (int, error) {
	var n int32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return 0, fmt.Errorf("%s: %w", what, readErr(err))
	}
	if n < 0 {
		return 0, fmt.Errorf("%s = %d: %w", what, n, ErrNegativeCount)
	}
	if int(n) > limit {
		return 0, fmt.Errorf("%s = %d > %d: %w", what, n, limit, ErrTooLarge)
	}

	return int(n), nil
}

// readErr maps end-of-input inside a record to ErrTruncated.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}

	return err
}
