package gridio

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/sirupsen/logrus"
)

// Dimension is one [[dimension]] table of a document.
type Dimension struct {
	Label  string    `toml:"label,omitempty"`
	Values []float64 `toml:"values"`
}

// Field is one [[field]] table of a document: a named scalar field with one
// sample per grid node, in node index order.
type Field struct {
	Name   string    `toml:"name"`
	Values []float64 `toml:"values"`
}

// Document is a grid together with the scalar fields sampled at its nodes.
// A Document returned by LoadDocument or NewDocument is validated: its grid
// is built and every field matches the node total.
type Document struct {
	Dimensions []Dimension `toml:"dimension"`
	Fields     []Field     `toml:"field,omitempty"`

	grid *grid.Grid
}

// NewDocument returns a document describing g with no fields.
// Errors: grid.ErrNilGrid.
func NewDocument(g *grid.Grid) (*Document, error) {
	if g == nil {
		return nil, fmt.Errorf("gridio.NewDocument: %w", grid.ErrNilGrid)
	}
	doc := &Document{grid: g, Dimensions: make([]Dimension, g.Dim())}
	for d, values := range g.Data() {
		doc.Dimensions[d] = Dimension{Label: g.Label(d), Values: values}
	}

	return doc, nil
}

// LoadDocument decodes a TOML document from r, builds its grid and checks
// its fields. Coordinates must already be ascending, since fields are
// indexed by the node order of the grid they were sampled on.
// Unknown keys are logged as warnings and otherwise ignored.
//
// Errors: TOML syntax errors, ErrUnsorted, ErrTooLarge, ErrFieldName,
// ErrDuplicateField, ErrFieldSize and wrapped grid construction errors.
func LoadDocument(r io.Reader, opts ...Option) (*Document, error) {
	o := gatherOptions(opts...)

	doc := new(Document)
	md, err := toml.NewDecoder(r).Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("gridio.LoadDocument: %w", err)
	}
	for _, key := range md.Undecoded() {
		o.logger.Warnf("gridio: ignoring unknown key %q", key.String())
	}

	if err = doc.build(o); err != nil {
		return nil, fmt.Errorf("gridio.LoadDocument: %w", err)
	}
	o.logger.WithFields(logrus.Fields{
		"dim":    doc.grid.Dim(),
		"nodes":  doc.grid.NodeTotal(),
		"fields": len(doc.Fields),
	}).Debug("gridio: loaded document")

	return doc, nil
}

// build validates the decoded tables and constructs the grid.
func (doc *Document) build(o Options) error {
	if len(doc.Dimensions) > o.maxDimensions {
		return fmt.Errorf("%d dimensions > %d: %w", len(doc.Dimensions), o.maxDimensions, ErrTooLarge)
	}
	data := make([][]float64, len(doc.Dimensions))
	labels := make([]string, len(doc.Dimensions))
	budget := o.newTableBudget(len(doc.Dimensions))
	for d, dim := range doc.Dimensions {
		if len(dim.Values) > o.maxCount {
			return fmt.Errorf("dimension %d has %d values > %d: %w", d, len(dim.Values), o.maxCount, ErrTooLarge)
		}
		if !budget.add(len(dim.Values)) {
			return fmt.Errorf("dimension %d: grid tables beyond %d nodes or %d entries: %w", d, o.maxNodes, o.maxTableEntries, ErrTooLarge)
		}
		if !sort.Float64sAreSorted(dim.Values) {
			return fmt.Errorf("dimension %d: %w", d, ErrUnsorted)
		}
		data[d] = dim.Values
		labels[d] = dim.Label
	}

	g, err := grid.New(data, grid.WithLabels(labels...))
	if err != nil {
		return err
	}

	fields := doc.Fields
	doc.grid, doc.Fields = g, nil
	for _, f := range fields {
		if err = doc.AddField(f.Name, f.Values); err != nil {
			return err
		}
	}

	return nil
}

// Grid returns the document's grid.
func (doc *Document) Grid() *grid.Grid { return doc.grid }

// FieldNames returns the field names in document order.
func (doc *Document) FieldNames() []string {
	names := make([]string, len(doc.Fields))
	for i, f := range doc.Fields {
		names[i] = f.Name
	}

	return names
}

// Field returns a copy of the samples of the named field.
// Errors: ErrFieldNotFound.
func (doc *Document) Field(name string) ([]float64, error) {
	for _, f := range doc.Fields {
		if f.Name == name {
			return append([]float64(nil), f.Values...), nil
		}
	}

	return nil, fmt.Errorf("field %q: %w", name, ErrFieldNotFound)
}

// AddField appends a copy of values as the field name.
// Errors: grid.ErrNilGrid (document not built), ErrFieldName,
// ErrDuplicateField, ErrFieldSize.
func (doc *Document) AddField(name string, values []float64) error {
	if doc.grid == nil {
		return fmt.Errorf("field %q: %w", name, grid.ErrNilGrid)
	}
	if name == "" {
		return fmt.Errorf("field %d: %w", len(doc.Fields), ErrFieldName)
	}
	for _, f := range doc.Fields {
		if f.Name == name {
			return fmt.Errorf("field %q: %w", name, ErrDuplicateField)
		}
	}
	if len(values) != doc.grid.NodeTotal() {
		return fmt.Errorf("field %q has %d values, grid has %d nodes: %w", name, len(values), doc.grid.NodeTotal(), ErrFieldSize)
	}
	doc.Fields = append(doc.Fields, Field{Name: name, Values: append([]float64(nil), values...)})

	return nil
}

// WriteDocument encodes doc to w as TOML.
// Errors: ErrNilDocument and any encoding or write error.
func WriteDocument(w io.Writer, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("gridio.WriteDocument: %w", ErrNilDocument)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("gridio.WriteDocument: %w", err)
	}

	return nil
}
