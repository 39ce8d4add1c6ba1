package gridio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TOMLExt is the extension selecting the TOML document format; any other
// extension selects the binary layout.
const TOMLExt = ".toml"

// IsTOML reports whether path names a TOML document.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TOMLExt)
}

// ReadFile loads a document from path. A binary file yields a document
// with no fields.
func ReadFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio.ReadFile: %w", err)
	}
	defer f.Close()

	if IsTOML(path) {
		return LoadDocument(f, opts...)
	}
	g, err := Decode(f, opts...)
	if err != nil {
		return nil, err
	}

	return NewDocument(g)
}

// WriteFile stores doc at path. The binary layout keeps only the grid;
// fields are dropped with a warning.
func WriteFile(path string, doc *Document, opts ...Option) (err error) {
	if doc == nil {
		return fmt.Errorf("gridio.WriteFile: %w", ErrNilDocument)
	}
	o := gatherOptions(opts...)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio.WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gridio.WriteFile: %w", cerr)
		}
	}()

	if IsTOML(path) {
		return WriteDocument(f, doc)
	}
	if len(doc.Fields) > 0 {
		o.logger.Warnf("gridio: binary file %s keeps no fields, dropping %d", path, len(doc.Fields))
	}

	return Encode(f, doc.Grid())
}
