package wire

import (
	"fmt"
	"strconv"

	"github.com/rson-format/go-rson/ir"
)

// Decode reads one value from d, which must contain exactly one
// encoded value.
func Decode(d []byte, opts ...Option) (*ir.Value, error) {
	v, n, err := DecodePrefix(d, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(d) {
		return nil, errAt(ErrTrailingData, n)
	}
	return v, nil
}

// DecodePrefix reads one value from the front of d and returns it
// with the number of bytes consumed. Framing layers that concatenate
// values use this to walk a log.
func DecodePrefix(d []byte, opts ...Option) (*ir.Value, int, error) {
	dec := &decoder{d: d, opts: getOpts(opts)}
	v, err := dec.value()
	if err != nil {
		return nil, dec.off, err
	}
	return v, dec.off, nil
}

type decoder struct {
	d     []byte
	off   int
	depth int
	opts  *codecOpts
}

func (dec *decoder) value() (*ir.Value, error) {
	tb, err := dec.next()
	if err != nil {
		return nil, err
	}
	switch tb {
	case typeTrue:
		return ir.FromBool(true), nil
	case typeFalse:
		return ir.FromBool(false), nil
	case typeNull:
		return ir.Null(), nil
	case typeInt:
		return dec.int()
	case typeFloat:
		return dec.float()
	case typeString:
		s, err := dec.raw()
		if err != nil {
			return nil, err
		}
		return ir.FromString(string(s)), nil
	case typeBytes:
		s, err := dec.raw()
		if err != nil {
			return nil, err
		}
		return ir.FromBytes(append([]byte(nil), s...)), nil
	case typeList:
		return dec.nested((*decoder).list)
	case typeRecord:
		return dec.nested((*decoder).record)
	case typeTagged:
		return dec.nested((*decoder).tagged)
	default:
		return nil, errAt(fmt.Errorf("%w 0x%02x", ErrUnknownType, tb), dec.off-1)
	}
}

func (dec *decoder) nested(f func(*decoder) (*ir.Value, error)) (*ir.Value, error) {
	dec.depth++
	if dec.depth > dec.opts.maxDepth {
		return nil, errAt(ErrNestingTooDeep, dec.off-1)
	}
	defer func() { dec.depth-- }()
	return f(dec)
}

// int parses the ASCII decimal payload of an already-consumed 'i'.
func (dec *decoder) int() (*ir.Value, error) {
	s, err := dec.untilTerminator()
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return nil, errAt(fmt.Errorf("%w: bad int payload %q", ErrEncoding, s), dec.off)
	}
	return ir.FromInt(n), nil
}

func (dec *decoder) float() (*ir.Value, error) {
	s, err := dec.untilTerminator()
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return nil, errAt(fmt.Errorf("%w: bad float payload %q", ErrEncoding, s), dec.off)
	}
	return ir.FromFloat(f), nil
}

// raw reads a length-prefixed payload shared by strings and byte
// strings. The returned slice aliases the input buffer.
func (dec *decoder) raw() ([]byte, error) {
	n, err := dec.length()
	if err != nil {
		return nil, err
	}
	if dec.off+n > len(dec.d) {
		return nil, errAt(ErrTruncated, dec.off)
	}
	s := dec.d[dec.off : dec.off+n]
	dec.off += n
	return s, dec.expectTerminator()
}

// length reads a nested Int encoding used for payload lengths and
// element counts.
func (dec *decoder) length() (int, error) {
	tb, err := dec.next()
	if err != nil {
		return 0, err
	}
	if tb != typeInt {
		return 0, errAt(fmt.Errorf("%w 0x%02x: expected length", ErrUnknownType, tb), dec.off-1)
	}
	v, err := dec.int()
	if err != nil {
		return 0, err
	}
	if v.Int64 < 0 || v.Int64 > int64(len(dec.d)) {
		return 0, errAt(fmt.Errorf("%w: length %d", ErrEncoding, v.Int64), dec.off)
	}
	return int(v.Int64), nil
}

func (dec *decoder) list() (*ir.Value, error) {
	n, err := dec.length()
	if err != nil {
		return nil, err
	}
	vs := make([]*ir.Value, 0, n)
	for range n {
		v, err := dec.value()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	if err := dec.expectTerminator(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vs), nil
}

func (dec *decoder) record() (*ir.Value, error) {
	n, err := dec.length()
	if err != nil {
		return nil, err
	}
	res := &ir.Value{Kind: ir.RecordKind}
	for range n {
		k, err := dec.value()
		if err != nil {
			return nil, err
		}
		if k.Kind != ir.StringKind && k.Kind != ir.IntKind {
			return nil, errAt(fmt.Errorf("%w: %s key", ErrEncoding, k.Kind), dec.off)
		}
		if len(res.Fields) > 0 && res.Fields[0].Kind != k.Kind {
			return nil, errAt(fmt.Errorf("%w: mixed %s and %s keys",
				ErrEncoding, res.Fields[0].Kind, k.Kind), dec.off)
		}
		for _, prev := range res.Fields {
			if ir.Equal(prev, k) {
				return nil, errAt(ErrDuplicateKey, dec.off)
			}
		}
		v, err := dec.value()
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, v)
	}
	if err := dec.expectTerminator(); err != nil {
		return nil, err
	}
	return res, nil
}

// tagged decodes a name/value pair and resolves it the way the text
// parser resolves @name prefixes: reserved names build their extended
// kind, registered names build application values, anything else is
// kept as an opaque tagged value.
func (dec *decoder) tagged() (*ir.Value, error) {
	tb, err := dec.next()
	if err != nil {
		return nil, err
	}
	if tb != typeString {
		return nil, errAt(fmt.Errorf("%w 0x%02x: expected tag name", ErrUnknownType, tb), dec.off-1)
	}
	name, err := dec.raw()
	if err != nil {
		return nil, err
	}
	v, err := dec.value()
	if err != nil {
		return nil, err
	}
	if err := dec.expectTerminator(); err != nil {
		return nil, err
	}
	res, err := dec.opts.registry.ResolveTag(string(name), v)
	if err != nil {
		return nil, errAt(err, dec.off)
	}
	return res, nil
}

func (dec *decoder) next() (byte, error) {
	if dec.off >= len(dec.d) {
		return 0, errAt(ErrTruncated, dec.off)
	}
	b := dec.d[dec.off]
	dec.off++
	return b, nil
}

func (dec *decoder) untilTerminator() ([]byte, error) {
	for i := dec.off; i < len(dec.d); i++ {
		if dec.d[i] == terminator {
			s := dec.d[dec.off:i]
			dec.off = i + 1
			return s, nil
		}
	}
	return nil, errAt(ErrTruncated, len(dec.d))
}

func (dec *decoder) expectTerminator() error {
	b, err := dec.next()
	if err != nil {
		return err
	}
	if b != terminator {
		return errAt(fmt.Errorf("%w 0x%02x: expected terminator", ErrUnknownType, b), dec.off-1)
	}
	return nil
}
