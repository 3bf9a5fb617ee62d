// Package rson is the entry point for working with rson documents: a
// JSON superset with comments, trailing commas, radix-prefixed
// numbers, and @name tags selecting extended types (sets, byte
// strings, datetimes, durations, complex numbers, sorted dicts).
//
// Parse and Dump convert between text and values; DumpWire and
// ParseWire do the same for the binary form. The subpackages expose
// the full API: parse, encode, wire, bridge, tag and ir.
package rson

import (
	"github.com/rson-format/go-rson/encode"
	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/parse"
	"github.com/rson-format/go-rson/tag"
	"github.com/rson-format/go-rson/wire"
)

// Value is the decoded form of any rson document.
type Value = ir.Value

// Registry maps application tag names to decoders and application Go
// types to encoders.
type Registry = tag.Registry

func NewRegistry() *Registry {
	return tag.NewRegistry()
}

// Parse decodes one rson text document.
func Parse(d []byte, opts ...parse.Option) (*Value, error) {
	return parse.Parse(d, opts...)
}

// ParseString decodes one rson text document from a string.
func ParseString(s string, opts ...parse.Option) (*Value, error) {
	return parse.ParseString(s, opts...)
}

// Dump returns the canonical text of v. Dump∘Parse is the identity on
// canonical text, and Parse∘Dump is the identity on values.
func Dump(v *Value, opts ...encode.Option) (string, error) {
	return encode.String(v, opts...)
}

// DumpWire returns the binary form of v.
func DumpWire(v *Value, opts ...wire.Option) ([]byte, error) {
	return wire.Bytes(v, opts...)
}

// ParseWire decodes one binary value.
func ParseWire(d []byte, opts ...wire.Option) (*Value, error) {
	return wire.Decode(d, opts...)
}
