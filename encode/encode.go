// Package encode emits the canonical text form of rson values.
package encode

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/tag"
	"github.com/rson-format/go-rson/token"
)

// EncState carries encoder configuration. Color, when set, wraps
// every emitted token; see Colors.
type EncState struct {
	registry *tag.Registry

	colorKind ir.Kind
	Color     func(ir.Kind, ColorAttr, string) string
}

// Encode writes the canonical text for node to w. The canonical form
// is unique per value: records keep insertion order, dicts and sets
// emit in sorted order, floats and datetimes use fixed literal
// shapes. parse(Encode(v)) reconstructs v.
func Encode(node *ir.Value, w io.Writer, opts ...Option) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String returns the canonical text of node.
func String(node *ir.Value, opts ...Option) (string, error) {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(node *ir.Value, w io.Writer, es *EncState) error {
	es.colorKind = node.Kind
	switch node.Kind {
	case ir.NullKind:
		return writeValue(w, es, "null")
	case ir.BoolKind:
		if node.Bool {
			return writeValue(w, es, "true")
		}
		return writeValue(w, es, "false")
	case ir.IntKind:
		return writeValue(w, es, strconv.FormatInt(node.Int64, 10))
	case ir.FloatKind:
		return encodeFloat(node.Float64, w, es)
	case ir.ComplexKind:
		return encodeComplex(node, w, es)
	case ir.StringKind:
		return writeValue(w, es, token.Quote(node.Str))
	case ir.BytesKind:
		if err := writeTag(w, es, "@base64 "); err != nil {
			return err
		}
		return writeValue(w, es, `"`+base64.StdEncoding.EncodeToString(node.Bytes)+`"`)
	case ir.ListKind:
		return encodeSeq(node.Values, w, es)
	case ir.SetKind:
		if err := writeTag(w, es, "@set "); err != nil {
			return err
		}
		return encodeSeq(ir.SortedValues(node), w, es)
	case ir.RecordKind:
		return encodePairs(node.Fields, node.Values, w, es)
	case ir.DictKind:
		if err := writeTag(w, es, "@dict "); err != nil {
			return err
		}
		ks, vs := ir.SortedPairs(node)
		return encodePairs(ks, vs, w, es)
	case ir.TimeKind:
		if err := writeTag(w, es, "@datetime "); err != nil {
			return err
		}
		return writeValue(w, es, `"`+node.Time.UTC().Format(ir.TimeLayout)+`"`)
	case ir.DurationKind:
		if err := writeTag(w, es, "@duration "); err != nil {
			return err
		}
		return writeValue(w, es, FormatFloat(node.Float64))
	case ir.TaggedKind:
		return encodeTagged(node.Name, node.Values[0], w, es)
	case ir.AppKind:
		name, payload, err := es.registry.ResolveValue(node.App)
		if err != nil {
			return err
		}
		return encodeTagged(name, payload, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrEncoding, node.Kind)
	}
}

// encodeTagged emits @name followed by the payload. The payload must
// be a plain shape: a value whose own canonical form starts with a
// tag prefix cannot follow another tag, since tags never nest.
func encodeTagged(name string, payload *ir.Value, w io.Writer, es *EncState) error {
	if selfTagged(payload) {
		return fmt.Errorf("%w: @%s payload %s requires its own tag",
			ErrEncoding, name, payload.Kind)
	}
	if err := writeTag(w, es, "@"+name+" "); err != nil {
		return err
	}
	return encode(payload, w, es)
}

// selfTagged reports whether a value's canonical form carries a tag
// prefix of its own.
func selfTagged(v *ir.Value) bool {
	switch v.Kind {
	case ir.ComplexKind, ir.BytesKind, ir.SetKind, ir.DictKind,
		ir.TimeKind, ir.DurationKind, ir.TaggedKind, ir.AppKind:
		return true
	case ir.FloatKind:
		return math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0)
	}
	return false
}

func encodeFloat(f float64, w io.Writer, es *EncState) error {
	switch {
	case math.IsNaN(f):
		return writeFloatTagged(w, es, "NaN")
	case math.IsInf(f, 1):
		return writeFloatTagged(w, es, "+Inf")
	case math.IsInf(f, -1):
		return writeFloatTagged(w, es, "-Inf")
	}
	return writeValue(w, es, FormatFloat(f))
}

func writeFloatTagged(w io.Writer, es *EncState, lit string) error {
	if err := writeTag(w, es, "@float "); err != nil {
		return err
	}
	return writeValue(w, es, `"`+lit+`"`)
}

// FormatFloat renders a finite float so the literal re-parses as a
// float under the grammar: the mantissa always contains a '.'
// ("5" becomes "5.0", "1e+21" becomes "1.0e+21") and the IEEE-754
// sign of zero is preserved ("-0" becomes "-0.0").
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		if !strings.Contains(s[:i], ".") {
			s = s[:i] + ".0" + s[i:]
		}
	} else if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func encodeComplex(node *ir.Value, w io.Writer, es *EncState) error {
	if err := writeTag(w, es, "@complex "); err != nil {
		return err
	}
	re := ir.FromFloat(real(node.Complex))
	im := ir.FromFloat(imag(node.Complex))
	return encodeSeq([]*ir.Value{re, im}, w, es)
}

func encodeSeq(vs []*ir.Value, w io.Writer, es *EncState) error {
	// child encodes overwrite colorKind; structural tokens keep the
	// container's kind
	kind := es.colorKind
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	for i, v := range vs {
		if i != 0 {
			es.colorKind = kind
			if err := writeSep(w, es, ", "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.colorKind = kind
	return writeSep(w, es, "]")
}

func encodePairs(ks, vs []*ir.Value, w io.Writer, es *EncState) error {
	kind := es.colorKind
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	for i, k := range ks {
		es.colorKind = kind
		if i != 0 {
			if err := writeSep(w, es, ", "); err != nil {
				return err
			}
		}
		if err := encodeKey(k, w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, ": "); err != nil {
			return err
		}
		if err := encode(vs[i], w, es); err != nil {
			return err
		}
	}
	es.colorKind = kind
	return writeSep(w, es, "}")
}

func encodeKey(k *ir.Value, w io.Writer, es *EncState) error {
	var lit string
	switch k.Kind {
	case ir.StringKind:
		lit = token.Quote(k.Str)
	case ir.IntKind:
		lit = strconv.FormatInt(k.Int64, 10)
	default:
		return fmt.Errorf("%w: %s key", ErrEncoding, k.Kind)
	}
	if es.Color != nil {
		lit = es.Color(es.colorKind, FieldColor, lit)
	}
	return writeString(w, lit)
}

// Write helpers

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(es.colorKind, ValueColor, s)
	}
	return writeString(w, s)
}

func writeTag(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(es.colorKind, TagColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(es.colorKind, SepColor, s)
	}
	return writeString(w, s)
}
