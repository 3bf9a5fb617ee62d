package tag

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rson-format/go-rson/ir"
)

// Apply interprets a reserved tag name against a decoded base value,
// returning the extended value it selects. Both the text parser and
// the binary decoder use it, so the two wire forms agree on tag
// semantics. A reserved name applied to a shape it does not govern is
// ErrReservedTag.
func Apply(name string, v *ir.Value) (*ir.Value, error) {
	switch name {
	case "list":
		if v.Kind == ir.ListKind {
			return v, nil
		}
	case "set":
		if v.Kind == ir.ListKind {
			return ir.NewSet(v.Values)
		}
		if v.Kind == ir.SetKind {
			return v, nil
		}
	case "complex":
		if v.Kind == ir.ListKind && len(v.Values) == 2 {
			re, ok1 := numAsFloat(v.Values[0])
			im, ok2 := numAsFloat(v.Values[1])
			if ok1 && ok2 {
				return ir.FromComplex(complex(re, im)), nil
			}
		}
	case "record", "object", "table":
		if v.Kind == ir.RecordKind {
			return v, nil
		}
		if name == "object" && v.Kind == ir.NullKind {
			return v, nil
		}
	case "dict", "hash":
		if v.Kind == ir.RecordKind {
			return toDict(v)
		}
		if v.Kind == ir.DictKind {
			return v, nil
		}
	case "string":
		if v.Kind == ir.StringKind {
			return v, nil
		}
	case "bytestring":
		// the text parser decodes the literal in byte mode
		// before applying the tag
		if v.Kind == ir.BytesKind {
			return v, nil
		}
		if v.Kind == ir.StringKind {
			return stringToBytes(v.Str)
		}
	case "base64":
		if v.Kind == ir.StringKind {
			d, err := base64.StdEncoding.Strict().DecodeString(v.Str)
			if err != nil {
				return nil, fmt.Errorf("%w: base64: %v", ErrInvalidEncoding, err)
			}
			return ir.FromBytes(d), nil
		}
	case "datetime":
		if v.Kind == ir.StringKind {
			return parseDateTime(v.Str)
		}
	case "float":
		switch v.Kind {
		case ir.StringKind:
			return parseFloatLiteral(v.Str)
		case ir.IntKind:
			return ir.FromFloat(float64(v.Int64)), nil
		case ir.FloatKind:
			return v, nil
		}
	case "int":
		if v.Kind == ir.IntKind {
			return v, nil
		}
		// a fractional or exponent literal cannot carry @int
	case "duration":
		switch v.Kind {
		case ir.IntKind:
			return ir.FromSeconds(float64(v.Int64)), nil
		case ir.FloatKind:
			return ir.FromSeconds(v.Float64), nil
		}
	case "bool":
		if v.Kind == ir.BoolKind {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: @%s on %s", ErrReservedTag, name, v.Kind)
}

func numAsFloat(v *ir.Value) (float64, bool) {
	switch v.Kind {
	case ir.IntKind:
		return float64(v.Int64), true
	case ir.FloatKind:
		return v.Float64, true
	}
	return 0, false
}

func toDict(v *ir.Value) (*ir.Value, error) {
	var keyKind *ir.Kind
	for _, f := range v.Fields {
		if keyKind == nil {
			keyKind = &f.Kind
			continue
		}
		if *keyKind != f.Kind {
			return nil, fmt.Errorf("%w: @dict with mixed %s and %s keys",
				ErrReservedTag, *keyKind, f.Kind)
		}
	}
	return &ir.Value{Kind: ir.DictKind, Fields: v.Fields, Values: v.Values}, nil
}

// stringToBytes narrows text to a byte string; every code point must
// fit in one byte.
func stringToBytes(s string) (*ir.Value, error) {
	d := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: code point %U out of byte range", ErrInvalidEncoding, r)
		}
		d = append(d, byte(r))
	}
	return ir.FromBytes(d), nil
}

func parseDateTime(s string) (*ir.Value, error) {
	if len(s) == 0 || (s[len(s)-1] != 'Z' && s[len(s)-1] != 'z') {
		return nil, fmt.Errorf("%w: datetime %q missing Z suffix", ErrInvalidEncoding, s)
	}
	t, err := time.Parse("2006-01-02T15:04:05.999999999", s[:len(s)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: datetime %q: %v", ErrInvalidEncoding, s, err)
	}
	return ir.FromTime(t.UTC()), nil
}

// parseFloatLiteral accepts the textual floats the decimal grammar
// cannot express: NaN, signed infinities, and C99 hex floats.
func parseFloatLiteral(s string) (*ir.Value, error) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	switch strings.ToLower(body) {
	case "nan", "inf", "infinity":
	default:
		if !strings.HasPrefix(strings.ToLower(body), "0x") {
			return nil, fmt.Errorf("%w: invalid float literal %q", ErrInvalidEncoding, s)
		}
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid float literal %q", ErrInvalidEncoding, s)
	}
	return ir.FromFloat(f), nil
}
