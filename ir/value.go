package ir

import (
	"maps"
	"slices"
	"time"
)

// Value is a single node in an rson document tree.
//
// Value is a tagged union: Kind selects which of the variant fields
// carry the payload. Composite kinds (List, Set, Record, Dict, Tagged)
// place children in Values; Record and Dict additionally place keys in
// Fields so that Fields[i] is the key for Values[i]. Record and Dict
// keys are String or Int valued, never mixed within one mapping.
//
// Values are immutable once constructed: the parser builds trees
// bottom-up and the encoders walk them without modification.
type Value struct {
	Kind Kind

	Bool    bool
	Int64   int64
	Float64 float64 // Float value, or Duration seconds
	Complex complex128
	Str     string
	Bytes   []byte
	Time    time.Time

	Fields []*Value // Record/Dict keys
	Values []*Value // List/Set/Record/Dict children; Tagged payload at [0]

	// Name is the tag name for TaggedKind, or the registered
	// application name for AppKind.
	Name string
	// App holds the decoded application value for AppKind.
	App any
}

func Null() *Value {
	return &Value{Kind: NullKind}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Kind: FloatKind, Float64: v}
}

func FromComplex(v complex128) *Value {
	return &Value{Kind: ComplexKind, Complex: v}
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, Str: v}
}

func FromBytes(v []byte) *Value {
	return &Value{Kind: BytesKind, Bytes: v}
}

// TimeLayout is the canonical datetime literal shape: UTC, six
// fractional digits, trailing Z.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// FromTime normalizes to UTC at microsecond precision, the precision
// datetimes carry on the wire.
func FromTime(t time.Time) *Value {
	return &Value{Kind: TimeKind, Time: t.UTC().Truncate(time.Microsecond)}
}

// FromDuration represents the duration as float seconds, the wire
// representation of durations.
func FromDuration(d time.Duration) *Value {
	return &Value{Kind: DurationKind, Float64: d.Seconds()}
}

// FromSeconds constructs a duration from a seconds count, preserving
// sub-second precision beyond what time.Duration can hold.
func FromSeconds(secs float64) *Value {
	return &Value{Kind: DurationKind, Float64: secs}
}

// Duration returns the value of a DurationKind node as a
// time.Duration, truncating precision outside its range.
func (v *Value) Duration() time.Duration {
	return time.Duration(v.Float64 * float64(time.Second))
}

func FromSlice(vs []*Value) *Value {
	return &Value{Kind: ListKind, Values: vs}
}

// NewSet builds a set from vs, rejecting duplicate members under
// Compare equality.
func NewSet(vs []*Value) (*Value, error) {
	res := &Value{Kind: SetKind}
	for _, v := range vs {
		if res.Has(v) {
			return nil, ErrDuplicateSetMember
		}
		res.Values = append(res.Values, v)
	}
	return res, nil
}

// Has reports whether a Set or List contains an element equal to v.
func (y *Value) Has(v *Value) bool {
	for _, e := range y.Values {
		if Compare(e, v) == 0 {
			return true
		}
	}
	return false
}

type KeyVal struct {
	Key *Value
	Val *Value
}

// FromKeyVals builds a record preserving the given key order. Keys
// must already be unique; the parser enforces that before calling.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{Kind: RecordKind}
	res.Fields = make([]*Value, len(kvs))
	res.Values = make([]*Value, len(kvs))
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds a dict from a Go map. The stored order is sorted, as
// dicts always serialize.
func FromMap(m map[string]*Value) *Value {
	res := FromMapRecord(m)
	res.Kind = DictKind
	return res
}

// FromMapRecord builds a record from a Go map, with keys in sorted
// order since Go maps have none.
func FromMapRecord(m map[string]*Value) *Value {
	keys := slices.Sorted(maps.Keys(m))
	res := &Value{Kind: RecordKind}
	res.Fields = make([]*Value, len(keys))
	res.Values = make([]*Value, len(keys))
	for i, k := range keys {
		res.Fields[i] = FromString(k)
		res.Values[i] = m[k]
	}
	return res
}

// Tagged wraps v with an application tag name. Reserved names are the
// registry's concern; see tag.Registry.
func Tagged(name string, v *Value) *Value {
	return &Value{Kind: TaggedKind, Name: name, Values: []*Value{v}}
}

// Get returns the value stored under a string key of a Record or
// Dict, or nil.
func Get(y *Value, field string) *Value {
	for i := range y.Fields {
		f := y.Fields[i]
		if f.Kind == StringKind && f.Str == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Value) Clone() *Value {
	res := &Value{}
	y.CloneTo(res)
	return res
}

func (y *Value) CloneTo(dst *Value) *Value {
	dst.Kind = y.Kind
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Complex = y.Complex
	dst.Str = y.Str
	dst.Time = y.Time
	dst.Name = y.Name
	dst.App = y.App
	if y.Bytes != nil {
		dst.Bytes = append([]byte(nil), y.Bytes...)
	}
	if y.Fields != nil {
		dst.Fields = make([]*Value, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Value, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit walks the tree pre- and post-order. f is called with
// isPost=false before children and isPost=true after; returning false
// from the pre-order call skips the children.
func (y *Value) Visit(f func(y *Value, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, k := range y.Fields {
			if err := k.Visit(f); err != nil {
				return err
			}
		}
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}
