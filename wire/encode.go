// Package wire implements the binary form of rson values, a TLV
// scheme suited to append-only logs: a type byte, an ASCII or
// length-prefixed payload, and a 0x7F terminator. The ten type bytes
// cover null, bool, int, float, string, bytes, list, record and
// tagged values; every other kind rides as a tagged form and is
// resolved on decode exactly as the text parser resolves tags, so
// text and binary reconstruct identical value trees.
package wire

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rson-format/go-rson/ir"
)

const (
	typeTrue   = 'y'
	typeFalse  = 'n'
	typeNull   = 'z'
	typeInt    = 'i'
	typeFloat  = 'f'
	typeString = 'u'
	typeBytes  = 'b'
	typeList   = 'l'
	typeRecord = 'r'
	typeTagged = 't'

	terminator = 0x7F
)

// Encode writes the binary form of node to w.
func Encode(node *ir.Value, w io.Writer, opts ...Option) error {
	o := getOpts(opts)
	return encode(node, w, o)
}

// Bytes returns the binary form of node.
func Bytes(node *ir.Value, opts ...Option) ([]byte, error) {
	b := &sliceWriter{}
	if err := Encode(node, b, opts...); err != nil {
		return nil, err
	}
	return b.d, nil
}

type sliceWriter struct {
	d []byte
}

func (b *sliceWriter) Write(p []byte) (int, error) {
	b.d = append(b.d, p...)
	return len(p), nil
}

func encode(node *ir.Value, w io.Writer, o *codecOpts) error {
	switch node.Kind {
	case ir.NullKind:
		return writeByte(w, typeNull)
	case ir.BoolKind:
		if node.Bool {
			return writeByte(w, typeTrue)
		}
		return writeByte(w, typeFalse)
	case ir.IntKind:
		return encodeInt(node.Int64, w)
	case ir.FloatKind:
		return encodeFloat(node.Float64, w)
	case ir.StringKind:
		return encodeString(node.Str, w)
	case ir.BytesKind:
		return encodeRaw(typeBytes, node.Bytes, w)
	case ir.ListKind:
		return encodeList(node.Values, w, o)
	case ir.RecordKind:
		return encodeRecord(node.Fields, node.Values, w, o)
	case ir.SetKind:
		return encodeTagged("set", ir.FromSlice(ir.SortedValues(node)), w, o)
	case ir.DictKind:
		ks, vs := ir.SortedPairs(node)
		rec := &ir.Value{Kind: ir.RecordKind, Fields: ks, Values: vs}
		return encodeTagged("dict", rec, w, o)
	case ir.ComplexKind:
		pair := ir.FromSlice([]*ir.Value{
			ir.FromFloat(real(node.Complex)),
			ir.FromFloat(imag(node.Complex)),
		})
		return encodeTagged("complex", pair, w, o)
	case ir.TimeKind:
		lit := node.Time.UTC().Format(ir.TimeLayout)
		return encodeTagged("datetime", ir.FromString(lit), w, o)
	case ir.DurationKind:
		return encodeTagged("duration", ir.FromFloat(node.Float64), w, o)
	case ir.TaggedKind:
		return encodeTagged(node.Name, node.Values[0], w, o)
	case ir.AppKind:
		name, payload, err := o.registry.ResolveValue(node.App)
		if err != nil {
			return err
		}
		return encodeTagged(name, payload, w, o)
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrEncoding, node.Kind)
	}
}

func encodeInt(v int64, w io.Writer) error {
	if err := writeByte(w, typeInt); err != nil {
		return err
	}
	if _, err := w.Write(strconv.AppendInt(nil, v, 10)); err != nil {
		return err
	}
	return writeByte(w, terminator)
}

// encodeFloat uses Go's C99 hex-float text, which round-trips the
// exact bits, including the sign of zero. NaN and the infinities
// carry their ASCII names.
func encodeFloat(v float64, w io.Writer) error {
	if err := writeByte(w, typeFloat); err != nil {
		return err
	}
	if _, err := w.Write(strconv.AppendFloat(nil, v, 'x', -1, 64)); err != nil {
		return err
	}
	return writeByte(w, terminator)
}

func encodeString(s string, w io.Writer) error {
	return encodeRaw(typeString, []byte(s), w)
}

func encodeRaw(tb byte, d []byte, w io.Writer) error {
	if err := writeByte(w, tb); err != nil {
		return err
	}
	if err := encodeInt(int64(len(d)), w); err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	return writeByte(w, terminator)
}

func encodeList(vs []*ir.Value, w io.Writer, o *codecOpts) error {
	if err := writeByte(w, typeList); err != nil {
		return err
	}
	if err := encodeInt(int64(len(vs)), w); err != nil {
		return err
	}
	for _, v := range vs {
		if err := encode(v, w, o); err != nil {
			return err
		}
	}
	return writeByte(w, terminator)
}

func encodeRecord(ks, vs []*ir.Value, w io.Writer, o *codecOpts) error {
	if err := writeByte(w, typeRecord); err != nil {
		return err
	}
	if err := encodeInt(int64(len(ks)), w); err != nil {
		return err
	}
	for i, k := range ks {
		if err := encode(k, w, o); err != nil {
			return err
		}
		if err := encode(vs[i], w, o); err != nil {
			return err
		}
	}
	return writeByte(w, terminator)
}

func encodeTagged(name string, payload *ir.Value, w io.Writer, o *codecOpts) error {
	if err := writeByte(w, typeTagged); err != nil {
		return err
	}
	if err := encodeString(name, w); err != nil {
		return err
	}
	if err := encode(payload, w, o); err != nil {
		return err
	}
	return writeByte(w, terminator)
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}
