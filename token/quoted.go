package token

import (
	"strings"
	"unicode/utf8"
)

// Quoted returns the length of the quoted string literal at the
// start of d, including both quotes. Single and double quote styles
// are accepted. The literal is validated structurally: it must
// terminate, contain no raw control characters or unescaped
// newlines, be valid UTF-8, and use only the defined escape forms.
func Quoted(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	qc := d[0]
	if qc != '"' && qc != '\'' {
		return 0, ErrUnterminated
	}
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == qc:
			return i + 1, nil
		case c == '\\':
			n, err := escapeLen(d[i:])
			if err != nil {
				return 0, err
			}
			i += n
		case c < 0x20:
			return 0, ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return 0, ErrBadUTF8
			}
			i += sz
		}
	}
	return 0, ErrUnterminated
}

// escapeLen returns the length of the escape sequence at the start
// of d, where d[0] == '\\'.
func escapeLen(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch d[1] {
	case 'b', 'f', 'n', 'r', 't', '/', '"', '\'', '\\':
		return 2, nil
	case '\n':
		// line continuation
		return 2, nil
	case '\r':
		if len(d) > 2 && d[2] == '\n' {
			return 3, nil
		}
		return 0, ErrBadEscape
	case 'x':
		return hexEscape(d, 2)
	case 'u':
		return hexEscape(d, 4)
	case 'U':
		return hexEscape(d, 8)
	default:
		return 0, ErrBadEscape
	}
}

func hexEscape(d []byte, n int) (int, error) {
	if len(d) < 2+n {
		return 0, ErrUnterminated
	}
	for _, c := range d[2 : 2+n] {
		if !hexDigit(c) {
			return 0, ErrBadUnicode
		}
	}
	return 2 + n, nil
}

// Unquote decodes a validated quoted literal into text. Escapes
// producing code points in the surrogate range or beyond the Unicode
// space are rejected.
func Unquote(d []byte) (string, error) {
	b := &strings.Builder{}
	err := unquote(d, func(r rune) error {
		if isSurrogate(r) {
			return ErrSurrogate
		}
		if r > utf8.MaxRune {
			return ErrBadUnicode
		}
		b.WriteRune(r)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// UnquoteBytes decodes a validated quoted literal into a byte
// string. Every code point, literal or escaped, must fit in one
// byte.
func UnquoteBytes(d []byte) ([]byte, error) {
	var out []byte
	err := unquote(d, func(r rune) error {
		if r > 0xFF {
			return ErrByteRange
		}
		out = append(out, byte(r))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// unquote walks a structurally valid quoted literal, emitting one
// code point per call. The target mode decides what is in range.
func unquote(d []byte, emit func(rune) error) error {
	qc := d[0]
	i := 1
	for i < len(d) {
		c := d[i]
		if c == qc {
			return nil
		}
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return ErrBadUTF8
			}
			if err := emit(r); err != nil {
				return err
			}
			i += sz
			continue
		}
		switch d[i+1] {
		case 'b':
			i += 2
			if err := emit('\b'); err != nil {
				return err
			}
		case 'f':
			i += 2
			if err := emit('\f'); err != nil {
				return err
			}
		case 'n':
			i += 2
			if err := emit('\n'); err != nil {
				return err
			}
		case 'r':
			i += 2
			if err := emit('\r'); err != nil {
				return err
			}
		case 't':
			i += 2
			if err := emit('\t'); err != nil {
				return err
			}
		case '/', '"', '\'', '\\':
			r := rune(d[i+1])
			i += 2
			if err := emit(r); err != nil {
				return err
			}
		case '\n':
			i += 2
		case '\r':
			i += 3
		case 'x':
			r := hexRune(d[i+2 : i+4])
			i += 4
			if err := emit(r); err != nil {
				return err
			}
		case 'u':
			r := hexRune(d[i+2 : i+6])
			i += 6
			if err := emit(r); err != nil {
				return err
			}
		case 'U':
			r := hexRune(d[i+2 : i+10])
			i += 10
			if err := emit(r); err != nil {
				return err
			}
		default:
			return ErrBadEscape
		}
	}
	return ErrUnterminated
}

// hexRune converts up to 8 hex digits. Values beyond the Unicode
// space collapse to MaxRune+1 so the mode range checks reject them
// instead of overflowing rune.
func hexRune(d []byte) rune {
	var v int64
	for _, c := range d {
		v <<= 4
		switch {
		case asciiDigit(c):
			v |= int64(c - '0')
		case 'a' <= c && c <= 'f':
			v |= int64(c-'a') + 10
		default:
			v |= int64(c-'A') + 10
		}
	}
	if v > utf8.MaxRune {
		return utf8.MaxRune + 1
	}
	return rune(v)
}

func isSurrogate(r rune) bool {
	return 0xD800 <= r && r <= 0xDFFF
}

// Quote renders v as a canonical double-quoted literal. Control
// characters escape to their short forms or \u; everything else is
// emitted verbatim.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, '\\', 'u',
					hexChar(byte(r>>12)&0xF),
					hexChar(byte(r>>8)&0xF),
					hexChar(byte(r>>4)&0xF),
					hexChar(byte(r)&0xF))
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, '"'))
}

func hexChar(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + n - 10
}
