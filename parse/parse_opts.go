package parse

import "github.com/rson-format/go-rson/tag"

// DefaultMaxDepth bounds value nesting when no WithMaxDepth option is
// given.
const DefaultMaxDepth = 1000

type Option func(*parseOpts)

type parseOpts struct {
	registry *tag.Registry
	maxDepth int
}

// WithRegistry supplies the tag registry used to resolve
// application tag names. Without it, unknown tags parse to opaque
// ir.TaggedKind values.
func WithRegistry(r *tag.Registry) Option {
	return func(o *parseOpts) { o.registry = r }
}

// WithMaxDepth overrides the nesting depth limit.
func WithMaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
