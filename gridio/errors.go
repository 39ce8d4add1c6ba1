// SPDX-License-Identifier: MIT

package gridio

import "errors"

var (
	// ErrNegativeCount indicates a negative dimension, value or label count in a binary stream.
	ErrNegativeCount = errors.New("gridio: negative count")

	// ErrTooLarge indicates a stream or document exceeding the configured size limits.
	ErrTooLarge = errors.New("gridio: size limit exceeded")

	// ErrTruncated indicates a binary stream that ended inside a record.
	ErrTruncated = errors.New("gridio: truncated stream")

	// ErrInvalidLabel indicates a label that is not valid UTF-8.
	ErrInvalidLabel = errors.New("gridio: label is not valid UTF-8")

	// ErrUnsorted indicates document coordinates that are not in ascending order.
	ErrUnsorted = errors.New("gridio: dimension values not ascending")

	// ErrFieldSize indicates a field whose length differs from the grid node total.
	ErrFieldSize = errors.New("gridio: field length does not match node total")

	// ErrFieldName indicates an empty field name.
	ErrFieldName = errors.New("gridio: empty field name")

	// ErrDuplicateField indicates two fields with the same name.
	ErrDuplicateField = errors.New("gridio: duplicate field name")

	// ErrFieldNotFound indicates a lookup of a field the document does not hold.
	ErrFieldNotFound = errors.New("gridio: field not found")

	// ErrNilDocument indicates a nil *Document argument.
	ErrNilDocument = errors.New("gridio: document is nil")
)
