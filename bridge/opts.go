package bridge

import "github.com/rson-format/go-rson/tag"

type Option func(*bridgeOpts)

type bridgeOpts struct {
	registry *tag.Registry
}

func getOpts(opts []Option) *bridgeOpts {
	o := &bridgeOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRegistry supplies the registry used to resolve wrapper names on
// read and to re-express application values on write.
func WithRegistry(r *tag.Registry) Option {
	return func(o *bridgeOpts) { o.registry = r }
}
