package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	rsontext "github.com/rson-format/go-rson/encode"
	"github.com/rson-format/go-rson/ir"
)

func TestEncodeBytes(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Value
		out  []byte
	}{
		{"true", ir.FromBool(true), []byte{'y'}},
		{"false", ir.FromBool(false), []byte{'n'}},
		{"null", ir.Null(), []byte{'z'}},
		{"int", ir.FromInt(123), []byte("i123\x7f")},
		{"negative int", ir.FromInt(-7), []byte("i-7\x7f")},
		{"float", ir.FromFloat(1.5), []byte("f0x1.8p+00\x7f")},
		{"nan", ir.FromFloat(math.NaN()), []byte("fNaN\x7f")},
		{"string", ir.FromString("hi"), []byte("ui2\x7fhi\x7f")},
		{"empty string", ir.FromString(""), []byte("ui0\x7f\x7f")},
		{"bytes", ir.FromBytes([]byte{0xff, 0x00}), []byte("bi2\x7f\xff\x00\x7f")},
		{"list", ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)}),
			[]byte("li2\x7fi1\x7fi2\x7f\x7f")},
		{"record", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		}), []byte("ri1\x7fui1\x7fa\x7fi1\x7f\x7f")},
		{"tagged", ir.Tagged("x", ir.Null()), []byte("tui1\x7fx\x7fz\x7f")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Bytes(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(d, tt.out) {
				t.Errorf("got %q want %q", d, tt.out)
			}
			back, err := Decode(tt.out)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(tt.node, back) {
				t.Errorf("decode mismatch: %s", rsontext.MustString(back))
			}
		})
	}
}

func mustSet(t *testing.T, vs ...*ir.Value) *ir.Value {
	t.Helper()
	s, err := ir.NewSet(vs)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// Every kind survives the binary form; extended kinds ride as tagged
// values and resolve back on decode.
func TestRoundTrip(t *testing.T) {
	when := time.Date(2017, 11, 22, 23, 32, 7, 100497000, time.UTC)
	nodes := []*ir.Value{
		ir.Null(),
		ir.FromBool(true),
		ir.FromInt(-1 << 62),
		ir.FromFloat(math.Copysign(0, -1)),
		ir.FromFloat(math.Inf(-1)),
		ir.FromComplex(complex(1, -2)),
		ir.FromString("héllo\x00"),
		ir.FromBytes([]byte{0x7f, 0x7f, 0x00}),
		ir.FromSlice(nil),
		mustSet(t, ir.FromInt(3), ir.FromInt(1)),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("k"), Val: mustSet(t, ir.FromBool(false))},
		}),
		ir.FromMap(map[string]*ir.Value{"b": ir.FromInt(1), "a": ir.Null()}),
		ir.FromTime(when),
		ir.FromDuration(90 * time.Second),
		ir.FromSeconds(0.125),
		ir.Tagged("app.cfg", ir.FromKeyVals(nil)),
	}
	for _, node := range nodes {
		d, err := Bytes(node)
		if err != nil {
			t.Errorf("%s: %v", rsontext.MustString(node), err)
			continue
		}
		back, err := Decode(d)
		if err != nil {
			t.Errorf("%s: decode: %v", rsontext.MustString(node), err)
			continue
		}
		if !ir.Equal(node, back) {
			t.Errorf("round trip: %s != %s",
				rsontext.MustString(node), rsontext.MustString(back))
		}
	}
}

// NaN breaks Equal; compare canonical dumps instead.
func TestRoundTripNaN(t *testing.T) {
	d, err := Bytes(ir.FromFloat(math.NaN()))
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(d)
	if err != nil {
		t.Fatal(err)
	}
	if got := rsontext.MustString(back); got != `@float "NaN"` {
		t.Errorf("got %q", got)
	}
}

func TestDecodeErrs(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		e    error
	}{
		{"empty", nil, ErrTruncated},
		{"bad type byte", []byte{'q'}, ErrUnknownType},
		{"reserved low byte", []byte{0x05}, ErrUnknownType},
		{"int no terminator", []byte("i123"), ErrTruncated},
		{"bad int payload", []byte("i12a\x7f"), ErrEncoding},
		{"bad float payload", []byte("fzz\x7f"), ErrEncoding},
		{"string short", []byte("ui5\x7fab"), ErrTruncated},
		{"string bad length", []byte("ui-1\x7f\x7f"), ErrEncoding},
		{"string length type", []byte("uz"), ErrUnknownType},
		{"list short", []byte("li2\x7fi1\x7f"), ErrTruncated},
		{"list no terminator", []byte("li1\x7fi1\x7fq"), ErrUnknownType},
		{"record bad key", []byte("ri1\x7fzz\x7f"), ErrEncoding},
		{"record dup key", []byte("ri2\x7fui1\x7fa\x7fzui1\x7fa\x7fz\x7f"), ErrDuplicateKey},
		{"tag name not string", []byte("tz"), ErrUnknownType},
		{"tag dup set", []byte("tui3\x7fset\x7fli2\x7fi1\x7fi1\x7f\x7f\x7f"), ErrDuplicateSetMember},
		{"tag shape", []byte("tui3\x7fset\x7fz\x7f"), ErrReservedTag},
		{"trailing data", []byte("zz"), ErrTrailingData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.in); !errors.Is(err, tt.e) {
				t.Errorf("got %v want %v", err, tt.e)
			}
		})
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	var d []byte
	for range 20 {
		d = append(d, 'l', 'i', '1', 0x7f)
	}
	d = append(d, 'z')
	for range 20 {
		d = append(d, 0x7f)
	}
	if _, err := Decode(d); err != nil {
		t.Fatalf("depth 20 should decode: %v", err)
	}
	if _, err := Decode(d, WithMaxDepth(5)); !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("got %v want %v", err, ErrNestingTooDeep)
	}
}

// DecodePrefix lets a framing layer walk concatenated values.
func TestDecodePrefix(t *testing.T) {
	var log []byte
	for _, node := range []*ir.Value{ir.FromInt(1), ir.FromString("two"), ir.Null()} {
		d, err := Bytes(node)
		if err != nil {
			t.Fatal(err)
		}
		log = append(log, d...)
	}
	var got []*ir.Value
	for len(log) > 0 {
		v, n, err := DecodePrefix(log)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
		log = log[n:]
	}
	if len(got) != 3 || got[0].Int64 != 1 || got[1].Str != "two" || got[2].Kind != ir.NullKind {
		t.Errorf("walked %d values", len(got))
	}
}
