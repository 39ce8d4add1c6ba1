// SPDX-License-Identifier: MIT

// Package grid: functional configuration for grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Labels are optional; an unlabelled grid carries "" for every dimension.
//   - Duplicated coordinates are accepted by default. They produce
//     zero-volume cells whose interpolation reports ErrDegenerateCell.
//     WithStrictlyAscending(true) rejects them up front.
package grid

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictlyAscending controls whether duplicated coordinates are rejected.
	DefaultStrictlyAscending = false

	// DefaultLabel is the label given to every dimension when none are supplied.
	DefaultLabel = ""
)

// Option mutates internal options. Safe to apply repeatedly; the last
// setter of a given field wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	labels            []string // nil => DefaultLabel for each dimension
	strictlyAscending bool     // DefaultStrictlyAscending
}

// WithLabels attaches one label per dimension. The label count is checked
// against the dimension count by New (ErrLabelCountMismatch).
// The slice is copied.
func WithLabels(labels ...string) Option {
	cp := make([]string, len(labels))
	copy(cp, labels)

	return func(o *Options) {
		o.labels = cp
	}
}

// WithStrictlyAscending makes New reject dimensions holding duplicated
// coordinate values with ErrDuplicateCoordinate.
func WithStrictlyAscending(on bool) Option {
	return func(o *Options) {
		o.strictlyAscending = on
	}
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		labels:            nil,
		strictlyAscending: DefaultStrictlyAscending,
	}
}

// gatherOptions folds opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
