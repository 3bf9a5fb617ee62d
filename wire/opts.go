package wire

import "github.com/rson-format/go-rson/tag"

// DefaultMaxDepth bounds decoder recursion, matching the text parser.
const DefaultMaxDepth = 1000

type Option func(*codecOpts)

type codecOpts struct {
	registry *tag.Registry
	maxDepth int
}

func getOpts(opts []Option) *codecOpts {
	o := &codecOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRegistry supplies the registry used to resolve tag names on
// decode and to re-express application values on encode.
func WithRegistry(r *tag.Registry) Option {
	return func(o *codecOpts) { o.registry = r }
}

// WithMaxDepth overrides the decoder nesting limit.
func WithMaxDepth(n int) Option {
	return func(o *codecOpts) { o.maxDepth = n }
}
