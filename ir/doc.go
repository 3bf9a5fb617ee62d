// Package ir provides the in-memory value model for rson documents.
//
// All rson values (whether parsed from text, decoded from the binary
// wire form, or created programmatically) are represented as trees of
// ir.Value nodes. The model is a tagged union: Kind selects which
// variant fields carry the payload.
//
// # Kinds
//
//   - NullKind, BoolKind: unit and boolean values
//   - IntKind: 64-bit signed integers
//   - FloatKind: IEEE-754 doubles, including NaN and ±Inf
//   - ComplexKind: complex128 pairs
//   - StringKind: Unicode text
//   - BytesKind: raw byte strings
//   - ListKind: ordered sequences
//   - SetKind: unordered collections without duplicates
//   - RecordKind: insertion-ordered mappings with unique keys
//   - DictKind: unordered mappings that serialize with sorted keys
//   - TimeKind: UTC instants
//   - DurationKind: signed spans of seconds
//   - TaggedKind: an opaque @name-tagged value
//   - AppKind: an application value decoded through a tag.Registry
//
// # Creating Values
//
// Use constructor functions:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	l := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//	d := ir.FromMap(map[string]*ir.Value{"key": ir.FromString("value")})
//
// # Comparison
//
// Compare defines a deterministic total order over all values. It is
// the order dict keys and set members serialize in, and the equality
// used for duplicate detection. Hash is consistent with Compare.
//
// # Thread safety
//
// Values are plain immutable trees; concurrent reads are safe,
// concurrent mutation is the caller's problem.
//
// # Related packages
//
//   - github.com/rson-format/go-rson/parse - text to values
//   - github.com/rson-format/go-rson/encode - values to canonical text
//   - github.com/rson-format/go-rson/wire - binary TLV codec
//   - github.com/rson-format/go-rson/tag - application tag registry
package ir
