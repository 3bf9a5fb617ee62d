// Package bridge re-expresses rson values as strict JSON and as plain
// Go values. JSON cannot carry tags, so every value beyond null,
// bool, number and string crosses as a single-member wrapper object
// {"<kind>": <payload>}; reading resolves the wrapper name exactly as
// the text parser resolves @name prefixes.
package bridge

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rson-format/go-rson/encode"
	"github.com/rson-format/go-rson/ir"
)

// ToJSON returns the strict-JSON form of node. Records and dicts
// require string keys; integer keys have no JSON spelling and fail
// with ErrUnrepresentable.
func ToJSON(node *ir.Value, opts ...Option) ([]byte, error) {
	o := getOpts(opts)
	j, err := toJSON(node, o)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

// jsonObj is a JSON object that marshals its members in insertion
// order, which encoding/json maps do not.
type jsonObj struct {
	keys []string
	vals []any
}

func (j *jsonObj) add(k string, v any) {
	j.keys = append(j.keys, k)
	j.vals = append(j.vals, v)
}

func (j *jsonObj) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range j.keys {
		if i != 0 {
			b.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kd)
		b.WriteByte(':')
		vd, err := json.Marshal(j.vals[i])
		if err != nil {
			return nil, err
		}
		b.Write(vd)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func wrap(kind string, payload any) *jsonObj {
	j := &jsonObj{}
	j.add(kind, payload)
	return j
}

func toJSON(node *ir.Value, o *bridgeOpts) (any, error) {
	switch node.Kind {
	case ir.NullKind:
		return nil, nil
	case ir.BoolKind:
		return node.Bool, nil
	case ir.IntKind:
		return json.Number(strconv.FormatInt(node.Int64, 10)), nil
	case ir.FloatKind:
		return floatToJSON(node.Float64), nil
	case ir.ComplexKind:
		return wrap("complex", []any{
			floatToJSON(real(node.Complex)),
			floatToJSON(imag(node.Complex)),
		}), nil
	case ir.StringKind:
		return node.Str, nil
	case ir.BytesKind:
		return wrap("base64", base64.StdEncoding.EncodeToString(node.Bytes)), nil
	case ir.ListKind:
		l, err := seqToJSON(node.Values, o)
		if err != nil {
			return nil, err
		}
		return wrap("list", l), nil
	case ir.SetKind:
		l, err := seqToJSON(ir.SortedValues(node), o)
		if err != nil {
			return nil, err
		}
		return wrap("set", l), nil
	case ir.RecordKind:
		obj, err := pairsToJSON(node.Fields, node.Values, o)
		if err != nil {
			return nil, err
		}
		return wrap("record", obj), nil
	case ir.DictKind:
		ks, vs := ir.SortedPairs(node)
		obj, err := pairsToJSON(ks, vs, o)
		if err != nil {
			return nil, err
		}
		return wrap("dict", obj), nil
	case ir.TimeKind:
		return wrap("datetime", node.Time.UTC().Format(ir.TimeLayout)), nil
	case ir.DurationKind:
		return wrap("duration", floatToJSON(node.Float64)), nil
	case ir.TaggedKind:
		payload, err := toJSON(node.Values[0], o)
		if err != nil {
			return nil, err
		}
		return wrap(node.Name, payload), nil
	case ir.AppKind:
		name, payload, err := o.registry.ResolveValue(node.App)
		if err != nil {
			return nil, err
		}
		j, err := toJSON(payload, o)
		if err != nil {
			return nil, err
		}
		return wrap(name, j), nil
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrJSON, node.Kind)
	}
}

// floatToJSON keeps float tokens distinguishable from int tokens: the
// literal always carries a '.' or exponent. JSON has no NaN or
// infinity, so those cross as @float wrapper strings.
func floatToJSON(f float64) any {
	switch {
	case math.IsNaN(f):
		return wrap("float", "NaN")
	case math.IsInf(f, 1):
		return wrap("float", "+Inf")
	case math.IsInf(f, -1):
		return wrap("float", "-Inf")
	}
	return json.Number(encode.FormatFloat(f))
}

func seqToJSON(vs []*ir.Value, o *bridgeOpts) ([]any, error) {
	l := make([]any, 0, len(vs))
	for _, v := range vs {
		j, err := toJSON(v, o)
		if err != nil {
			return nil, err
		}
		l = append(l, j)
	}
	return l, nil
}

func pairsToJSON(ks, vs []*ir.Value, o *bridgeOpts) (*jsonObj, error) {
	obj := &jsonObj{}
	for i, k := range ks {
		if k.Kind != ir.StringKind {
			return nil, fmt.Errorf("%w: %s key", ErrUnrepresentable, k.Kind)
		}
		j, err := toJSON(vs[i], o)
		if err != nil {
			return nil, err
		}
		obj.add(k.Str, j)
	}
	return obj, nil
}

// FromJSON reads the strict-JSON form produced by ToJSON. It walks
// the token stream directly so record member order survives; a plain
// json.Unmarshal into a map would lose it.
func FromJSON(d []byte, opts ...Option) (*ir.Value, error) {
	o := getOpts(opts)
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := readValue(dec, o)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content", ErrJSON)
	}
	return v, nil
}

func readValue(dec *json.Decoder, o *bridgeOpts) (*ir.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	return fromToken(tok, dec, o)
}

func fromToken(tok json.Token, dec *json.Decoder, o *bridgeOpts) (*ir.Value, error) {
	switch t := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return numberValue(t)
	case json.Delim:
		switch t {
		case '[':
			return readArray(dec, o)
		case '{':
			return readWrapper(dec, o)
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
}

func numberValue(n json.Number) (*ir.Value, error) {
	if strings.ContainsAny(n.String(), ".eE") {
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrJSON, n)
		}
		return ir.FromFloat(f), nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrJSON, n)
	}
	return ir.FromInt(i), nil
}

func readArray(dec *json.Decoder, o *bridgeOpts) (*ir.Value, error) {
	var vs []*ir.Value
	for dec.More() {
		v, err := readValue(dec, o)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	return ir.FromSlice(vs), nil
}

// readWrapper reads a single-member {"<kind>": payload} object. The
// record and dict wrappers take their payload as a member map; every
// other payload is an ordinary value.
func readWrapper(dec *json.Decoder, o *bridgeOpts) (*ir.Value, error) {
	if !dec.More() {
		return nil, fmt.Errorf("%w: empty object", ErrJSON)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	name, ok := tok.(string)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
	}
	var payload *ir.Value
	switch name {
	case "record", "object", "table", "dict", "hash":
		payload, err = readMembers(dec, o)
	default:
		payload, err = readValue(dec, o)
	}
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: object with more than one member", ErrJSON)
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	v, err := o.registry.ResolveTag(name, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	return v, nil
}

func readMembers(dec *json.Decoder, o *bridgeOpts) (*ir.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
	}
	res := &ir.Value{Kind: ir.RecordKind}
	for dec.More() {
		ktok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrJSON, err)
		}
		name, ok := ktok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, ktok)
		}
		k := ir.FromString(name)
		for _, prev := range res.Fields {
			if ir.Equal(prev, k) {
				return nil, fmt.Errorf("%w: duplicate key %q", ErrJSON, name)
			}
		}
		v, err := readValue(dec, o)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, v)
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}
	return res, nil
}
