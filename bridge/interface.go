package bridge

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/rson-format/go-rson/ir"
)

// ToInterface converts node to plain Go values: records and dicts
// become map[string]any (losing record order and narrowing non-string
// keys to their decimal text), lists and sets become []any. The
// result suits expression evaluation and generic marshalers.
func ToInterface(node *ir.Value) (any, error) {
	switch node.Kind {
	case ir.NullKind:
		return nil, nil
	case ir.BoolKind:
		return node.Bool, nil
	case ir.IntKind:
		return node.Int64, nil
	case ir.FloatKind:
		return node.Float64, nil
	case ir.ComplexKind:
		return node.Complex, nil
	case ir.StringKind:
		return node.Str, nil
	case ir.BytesKind:
		return node.Bytes, nil
	case ir.ListKind:
		return seqToInterface(node.Values)
	case ir.SetKind:
		return seqToInterface(ir.SortedValues(node))
	case ir.RecordKind:
		return pairsToInterface(node.Fields, node.Values)
	case ir.DictKind:
		ks, vs := ir.SortedPairs(node)
		return pairsToInterface(ks, vs)
	case ir.TimeKind:
		return node.Time, nil
	case ir.DurationKind:
		return node.Float64, nil
	case ir.TaggedKind:
		return ToInterface(node.Values[0])
	case ir.AppKind:
		return node.App, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %s", ErrJSON, node.Kind)
	}
}

func seqToInterface(vs []*ir.Value) ([]any, error) {
	l := make([]any, 0, len(vs))
	for _, v := range vs {
		g, err := ToInterface(v)
		if err != nil {
			return nil, err
		}
		l = append(l, g)
	}
	return l, nil
}

func pairsToInterface(ks, vs []*ir.Value) (map[string]any, error) {
	m := make(map[string]any, len(ks))
	for i, k := range ks {
		var name string
		switch k.Kind {
		case ir.StringKind:
			name = k.Str
		case ir.IntKind:
			name = strconv.FormatInt(k.Int64, 10)
		default:
			return nil, fmt.Errorf("%w: %s key", ErrJSON, k.Kind)
		}
		g, err := ToInterface(vs[i])
		if err != nil {
			return nil, err
		}
		m[name] = g
	}
	return m, nil
}

// FromInterface builds a value from plain Go data. Maps become
// records with sorted string keys.
func FromInterface(g any, opts ...Option) (*ir.Value, error) {
	o := getOpts(opts)
	return fromInterface(g, o)
}

func fromInterface(g any, o *bridgeOpts) (*ir.Value, error) {
	switch t := g.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > 1<<63-1 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrJSON, t)
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case complex128:
		return ir.FromComplex(t), nil
	case string:
		return ir.FromString(t), nil
	case []byte:
		return ir.FromBytes(t), nil
	case time.Time:
		return ir.FromTime(t), nil
	case time.Duration:
		return ir.FromDuration(t), nil
	case []any:
		vs := make([]*ir.Value, 0, len(t))
		for _, e := range t {
			v, err := fromInterface(e, o)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		return mapToRecord(t, o)
	case *ir.Value:
		return t, nil
	default:
		if o.registry != nil {
			if _, _, err := o.registry.ResolveValue(g); err == nil {
				return &ir.Value{Kind: ir.AppKind, App: g}, nil
			}
		}
		return nil, fmt.Errorf("%w: cannot convert %T", ErrJSON, g)
	}
}

func mapToRecord(m map[string]any, o *bridgeOpts) (*ir.Value, error) {
	res := &ir.Value{Kind: ir.RecordKind}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v, err := fromInterface(m[k], o)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, ir.FromString(k))
		res.Values = append(res.Values, v)
	}
	return res, nil
}
