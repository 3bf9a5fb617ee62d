// Package format names the serializations the rson tools read and
// write.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//
// Format values round-trip through flag parsing and config files via
// MarshalText/UnmarshalText.
//
// # Related Packages
//
//   - github.com/rson-format/go-rson/parse - Parse text to values
//   - github.com/rson-format/go-rson/encode - Encode values to text
//   - github.com/rson-format/go-rson/wire - Binary codec
//   - github.com/rson-format/go-rson/bridge - JSON bridge
package format
