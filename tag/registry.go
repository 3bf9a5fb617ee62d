package tag

import (
	"fmt"
	"reflect"

	"github.com/rson-format/go-rson/ir"
)

// reserved holds the tag names governing the format's own extended
// types. Application code can never register or emit one of these.
var reserved = map[string]bool{
	"bool":       true,
	"int":        true,
	"float":      true,
	"complex":    true,
	"string":     true,
	"bytestring": true,
	"base64":     true,
	"duration":   true,
	"datetime":   true,
	"set":        true,
	"list":       true,
	"dict":       true,
	"record":     true,
	"object":     true,
	"table":      true,
	"hash":       true,
}

func IsReserved(name string) bool {
	return reserved[name]
}

// DecodeFunc decodes the payload of an application tag into an
// application value.
type DecodeFunc func(*ir.Value) (any, error)

// EncodeFunc re-expresses an application value as a tag name and a
// payload value. The name must not be reserved.
type EncodeFunc func(any) (string, *ir.Value, error)

// Registry associates application tag names with decoders and
// application Go types with encoders. A Registry is populated once at
// program start and then treated as read-only; it does no locking,
// so concurrent parse and encode calls are safe only if nothing
// mutates it after initialization.
//
// A nil *Registry is valid: all unknown tags become opaque
// ir.TaggedKind values and no application types encode.
type Registry struct {
	// Strict makes ResolveTag fail with ErrUnknownTag instead of
	// wrapping unknown names as opaque tagged values.
	Strict bool

	decoders map[string]DecodeFunc
	encoders map[reflect.Type]EncodeFunc
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: map[string]DecodeFunc{},
		encoders: map[reflect.Type]EncodeFunc{},
	}
}

// Register associates name with a decoder and typ with an encoder.
// Either func may be nil for a one-directional binding.
func (r *Registry) Register(name string, typ reflect.Type, dec DecodeFunc, enc EncodeFunc) error {
	if IsReserved(name) {
		return fmt.Errorf("%w: cannot register %q", ErrReservedTag, name)
	}
	if dec != nil {
		if _, ok := r.decoders[name]; ok {
			return fmt.Errorf("tag %q already registered", name)
		}
		r.decoders[name] = dec
	}
	if enc != nil {
		if typ == nil {
			return fmt.Errorf("tag %q: encoder registered without a type", name)
		}
		if _, ok := r.encoders[typ]; ok {
			return fmt.Errorf("type %s already registered", typ)
		}
		r.encoders[typ] = enc
	}
	return nil
}

// ResolveTag interprets a tag name applied to a decoded value.
// Reserved names route through Apply; registered names produce an
// AppKind value; anything else wraps as an opaque tagged value, or
// fails if the registry is strict.
func (r *Registry) ResolveTag(name string, v *ir.Value) (*ir.Value, error) {
	if IsReserved(name) {
		return Apply(name, v)
	}
	if r != nil {
		if dec, ok := r.decoders[name]; ok {
			app, err := dec(v)
			if err != nil {
				return nil, fmt.Errorf("tag %q: %w", name, err)
			}
			return &ir.Value{Kind: ir.AppKind, Name: name, App: app}, nil
		}
		if r.Strict {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, name)
		}
	}
	return ir.Tagged(name, v), nil
}

// ResolveValue looks up the encoder for an application value and
// returns its tag name and payload. The registry rejects encoders
// returning a reserved name so application values can never
// impersonate a built-in.
func (r *Registry) ResolveValue(app any) (string, *ir.Value, error) {
	if r == nil {
		return "", nil, fmt.Errorf("%w: %T", ErrUnknownType, app)
	}
	enc, ok := r.encoders[reflect.TypeOf(app)]
	if !ok {
		return "", nil, fmt.Errorf("%w: %T", ErrUnknownType, app)
	}
	name, v, err := enc(app)
	if err != nil {
		return "", nil, err
	}
	if IsReserved(name) {
		return "", nil, fmt.Errorf("%w: encoder returned %q", ErrReservedTag, name)
	}
	return name, v, nil
}
