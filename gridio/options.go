// SPDX-License-Identifier: MIT

package gridio

import "github.com/sirupsen/logrus"

const (
	// DefaultMaxDimensions bounds D; 2^D corner permutations are built per grid.
	DefaultMaxDimensions = 16
	// DefaultMaxCount bounds the number of values of a single dimension.
	DefaultMaxCount = 1 << 20
	// DefaultMaxNodes bounds the node total Π count[d] of a decoded grid.
	DefaultMaxNodes = 1 << 24
	// DefaultMaxTableEntries bounds the node and cell table entries a decoded
	// grid allocates: 2·D per node plus 2^D + D per cell.
	DefaultMaxTableEntries = 1 << 24
	// DefaultMaxLabelBytes bounds the encoded length of a single label.
	// Encode rejects longer labels so every written grid can be read back.
	DefaultMaxLabelBytes = 1 << 10
)

// Option configures a reader or writer.
type Option func(*Options)

// Options holds reader/writer configuration. Use the With* helpers.
type Options struct {
	logger          logrus.FieldLogger
	maxDimensions   int
	maxCount        int
	maxNodes        int
	maxTableEntries int
	maxLabelBytes   int
}

// WithLogger routes diagnostics to l instead of logrus.StandardLogger().
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxDimensions sets the largest accepted D. Values < 1 are ignored.
func WithMaxDimensions(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxDimensions = n
		}
	}
}

// WithMaxCount sets the largest accepted number of values per dimension.
// Values < 2 are ignored.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n > 1 {
			o.maxCount = n
		}
	}
}

// WithMaxNodes sets the largest accepted node total. Values < 2 are ignored.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n > 1 {
			o.maxNodes = n
		}
	}
}

// WithMaxTableEntries sets the largest accepted number of node and cell
// table entries (see DefaultMaxTableEntries). Values < 1 are ignored.
func WithMaxTableEntries(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxTableEntries = n
		}
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		logger:          logrus.StandardLogger(),
		maxDimensions:   DefaultMaxDimensions,
		maxCount:        DefaultMaxCount,
		maxNodes:        DefaultMaxNodes,
		maxTableEntries: DefaultMaxTableEntries,
		maxLabelBytes:   DefaultMaxLabelBytes,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// tableBudget bounds what grid.New allocates for a grid of dim dimensions,
// one dimension at a time. The node table holds 2·D entries per node
// (coordinates and tuple) and the cell table 2^D + D per cell (corner
// indices and tuple). Totals only grow as dimensions are added, so a
// partial grid over budget is already rejected.
type tableBudget struct {
	nodes, cells int
	perNode      int
	perCell      int
	maxNodes     int
	maxEntries   int
}

// newTableBudget starts a budget for dim dimensions.
func (o Options) newTableBudget(dim int) *tableBudget {
	perCell := o.maxTableEntries + 1
	if dim < 31 {
		perCell = 1<<dim + dim
	}

	return &tableBudget{
		nodes:      1,
		cells:      1,
		perNode:    2 * dim,
		perCell:    perCell,
		maxNodes:   o.maxNodes,
		maxEntries: o.maxTableEntries,
	}
}

// add accounts for one more dimension holding count values. It reports
// false as soon as the node total or the table entries exceed the limits.
func (b *tableBudget) add(count int) bool {
	cells := count - 1
	if cells < 0 {
		cells = 0
	}
	var ok bool
	if b.nodes, ok = mulWithin(b.nodes, count, b.maxNodes); !ok {
		return false
	}
	if b.cells, ok = mulWithin(b.cells, cells, b.maxNodes); !ok {
		return false
	}
	nodeEntries, ok := mulWithin(b.nodes, b.perNode, b.maxEntries)
	if !ok {
		return false
	}
	cellEntries, ok := mulWithin(b.cells, b.perCell, b.maxEntries)
	if !ok {
		return false
	}

	return nodeEntries <= b.maxEntries-cellEntries
}

// mulWithin returns a·b when it does not exceed limit (a, b >= 0).
func mulWithin(a, b, limit int) (int, bool) {
	if b > 0 && a > limit/b {
		return 0, false
	}

	return a * b, true
}
