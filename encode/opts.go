package encode

import "github.com/rson-format/go-rson/tag"

type Option func(*EncState)

// WithRegistry supplies the registry used to re-express application
// values as tagged text.
func WithRegistry(r *tag.Registry) Option {
	return func(es *EncState) { es.registry = r }
}

// WithColors turns on ANSI-colored output.
func WithColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
