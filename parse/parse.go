// Package parse provides rson parsing support.
package parse

import (
	"bytes"
	"fmt"

	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/token"
)

// Parse reads exactly one rson value from d. Trailing content after
// the root value is an error.
func Parse(d []byte, opts ...Option) (*ir.Value, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if err := checkEncoding(d); err != nil {
		return nil, err
	}
	p := &parser{
		d:    d,
		doc:  token.NewPosDoc(d),
		opts: pOpts,
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.off != len(p.d) {
		return nil, fmt.Errorf("%w at %s", ErrTrailingContent, p.pos())
	}
	return v, nil
}

func ParseString(s string, opts ...Option) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

// checkEncoding rejects the alternate Unicode encodings by their
// byte order marks; rson text is UTF-8 only.
func checkEncoding(d []byte) error {
	for _, bom := range [][]byte{
		{0x00, 0x00, 0xFE, 0xFF}, // UTF-32 BE
		{0xFF, 0xFE, 0x00, 0x00}, // UTF-32 LE
		{0xFE, 0xFF},             // UTF-16 BE
		{0xFF, 0xFE},             // UTF-16 LE
	} {
		if bytes.HasPrefix(d, bom) {
			return fmt.Errorf("%w: input is not UTF-8", ErrSyntax)
		}
	}
	return nil
}

type parser struct {
	d     []byte
	doc   *token.PosDoc
	off   int
	depth int
	opts  *parseOpts
}

func (p *parser) pos() *token.Pos {
	return p.doc.Pos(p.off)
}

func (p *parser) ws() {
	p.off += token.Whitespace(p.d[p.off:])
}

func (p *parser) eof() error {
	return fmt.Errorf("%w: unexpected end of input at %s", ErrSyntax, p.pos())
}

// value parses one value: optional whitespace, an optional single
// @tag prefix, then a literal or collection dispatched on the next
// significant character.
func (p *parser) value() (*ir.Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: depth %d at %s", ErrNestingTooDeep, p.depth, p.pos())
	}
	p.ws()
	if p.off >= len(p.d) {
		return nil, p.eof()
	}
	name := ""
	if p.d[p.off] == '@' {
		var n int
		var err error
		name, n, err = token.TagName(p.d[p.off:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrSyntax, err, p.pos())
		}
		p.off += n
		if p.off < len(p.d) && p.d[p.off] == '@' {
			// tags never nest
			return nil, fmt.Errorf("%w: tag on tag at %s", ErrSyntax, p.pos())
		}
	}
	if p.off >= len(p.d) {
		return nil, p.eof()
	}
	switch c := p.d[p.off]; c {
	case '{':
		return p.object(name)
	case '[':
		return p.list(name)
	case '"', '\'':
		return p.quoted(name)
	case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.number(name)
	default:
		return p.literal(name)
	}
}

// applyTag routes a tag name over a finished base value: reserved
// names through tag.Apply, anything else through the registry.
func (p *parser) applyTag(name string, v *ir.Value, at *token.Pos) (*ir.Value, error) {
	res, err := p.opts.registry.ResolveTag(name, v)
	if err != nil {
		return nil, fmt.Errorf("%w at %s", err, at)
	}
	return res, nil
}

func (p *parser) object(name string) (*ir.Value, error) {
	at := p.pos()
	p.off++
	var (
		kvs     []ir.KeyVal
		keyKind *ir.Kind
	)
	p.ws()
	for {
		if p.off >= len(p.d) {
			return nil, fmt.Errorf("%w: unterminated object starting at %s", ErrSyntax, at)
		}
		if p.d[p.off] == '}' {
			p.off++
			break
		}
		keyAt := p.pos()
		key, err := p.value()
		if err != nil {
			return nil, err
		}
		switch key.Kind {
		case ir.StringKind, ir.IntKind:
		default:
			return nil, fmt.Errorf("%w: %s key at %s", ErrSyntax, key.Kind, keyAt)
		}
		if keyKind == nil {
			keyKind = &key.Kind
		} else if *keyKind != key.Kind {
			return nil, fmt.Errorf("%w: mixed %s and %s keys at %s",
				ErrSyntax, *keyKind, key.Kind, keyAt)
		}
		for i := range kvs {
			if ir.Compare(kvs[i].Key, key) == 0 {
				return nil, fmt.Errorf("%w at %s", ErrDuplicateKey, keyAt)
			}
		}
		p.ws()
		if p.off >= len(p.d) || p.d[p.off] != ':' {
			return nil, fmt.Errorf("%w: expected ':' at %s", ErrSyntax, p.pos())
		}
		p.off++
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		p.ws()
		if p.off >= len(p.d) {
			return nil, fmt.Errorf("%w: unterminated object starting at %s", ErrSyntax, at)
		}
		switch p.d[p.off] {
		case ',':
			p.off++
			p.ws()
		case '}':
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}' at %s", ErrSyntax, p.pos())
		}
	}
	rec := ir.FromKeyVals(kvs)
	if name == "" {
		return rec, nil
	}
	return p.applyTag(name, rec, at)
}

func (p *parser) list(name string) (*ir.Value, error) {
	at := p.pos()
	p.off++
	var elems []*ir.Value
	isSet := name == "set"
	for {
		p.ws()
		if p.off >= len(p.d) {
			return nil, fmt.Errorf("%w: unterminated list starting at %s", ErrSyntax, at)
		}
		if p.d[p.off] == ']' {
			p.off++
			break
		}
		eltAt := p.pos()
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		if isSet {
			for _, prev := range elems {
				if ir.Compare(prev, elt) == 0 {
					return nil, fmt.Errorf("%w at %s", ErrDuplicateSetMember, eltAt)
				}
			}
		}
		elems = append(elems, elt)
		p.ws()
		if p.off >= len(p.d) {
			return nil, fmt.Errorf("%w: unterminated list starting at %s", ErrSyntax, at)
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']' at %s", ErrSyntax, p.pos())
		}
	}
	lst := ir.FromSlice(elems)
	if name == "" {
		return lst, nil
	}
	return p.applyTag(name, lst, at)
}

func (p *parser) quoted(name string) (*ir.Value, error) {
	at := p.pos()
	n, err := token.Quoted(p.d[p.off:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v at %s", ErrSyntax, err, at)
	}
	lit := p.d[p.off : p.off+n]
	p.off += n
	var v *ir.Value
	if name == "bytestring" {
		// byte mode: the decoded target is a byte string, so
		// every code point must fit in one byte
		b, err := token.UnquoteBytes(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrInvalidEncoding, err, at)
		}
		v = ir.FromBytes(b)
	} else {
		s, err := token.Unquote(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrInvalidEncoding, err, at)
		}
		v = ir.FromString(s)
	}
	if name == "" {
		return v, nil
	}
	return p.applyTag(name, v, at)
}

func (p *parser) number(name string) (*ir.Value, error) {
	at := p.pos()
	n, isFloat, err := token.Number(p.d[p.off:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v at %s", ErrSyntax, err, at)
	}
	lit := string(p.d[p.off : p.off+n])
	p.off += n
	var v *ir.Value
	if isFloat {
		f, err := token.ParseFloat(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrSyntax, err, at)
		}
		v = ir.FromFloat(f)
	} else {
		i, err := token.ParseInt(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrSyntax, err, at)
		}
		v = ir.FromInt(i)
	}
	if name == "" {
		return v, nil
	}
	return p.applyTag(name, v, at)
}

func (p *parser) literal(name string) (*ir.Value, error) {
	at := p.pos()
	n := token.Identifier(p.d[p.off:])
	if n == 0 {
		return nil, fmt.Errorf("%w: unexpected character %q at %s",
			ErrSyntax, p.d[p.off], at)
	}
	word := string(p.d[p.off : p.off+n])
	p.off += n
	var v *ir.Value
	switch word {
	case "null":
		v = ir.Null()
	case "true":
		v = ir.FromBool(true)
	case "false":
		v = ir.FromBool(false)
	default:
		return nil, fmt.Errorf("%w: unexpected identifier %q at %s", ErrSyntax, word, at)
	}
	if name == "" {
		return v, nil
	}
	return p.applyTag(name, v, at)
}
