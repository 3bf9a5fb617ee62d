package token

import (
	"errors"
	"testing"
)

func TestQuoted(t *testing.T) {
	tests := []struct {
		in string
		n  int
	}{
		{`""`, 2},
		{`''`, 2},
		{`"abc"`, 5},
		{`'abc' tail`, 5},
		{`"a\"b"`, 6},
		{`'a\'b'`, 6},
		{`"a'b"`, 5},
		{`"\x41"`, 6},
		{"\"\\u0041\"", 8},
		{`"\U00000041"`, 12},
		{"\"a\\\nb\"", 6},
		{"\"héllo\"", 8},
	}
	for _, tt := range tests {
		n, err := Quoted([]byte(tt.in))
		if err != nil {
			t.Errorf("Quoted(%q): %v", tt.in, err)
			continue
		}
		if n != tt.n {
			t.Errorf("Quoted(%q) = %d want %d", tt.in, n, tt.n)
		}
	}
}

func TestQuotedErr(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{``, ErrUnterminated},
		{`"`, ErrUnterminated},
		{`"abc`, ErrUnterminated},
		{`'abc"`, ErrUnterminated},
		{`"\`, ErrUnterminated},
		{`"\q"`, ErrBadEscape},
		{`"\x4g"`, ErrBadUnicode},
		{`"\u00"`, ErrUnterminated},
		{`"\u00zz"`, ErrBadUnicode},
		{"\"a\nb\"", ErrUnicodeControl},
		{"\"a\x01b\"", ErrUnicodeControl},
		{"\"a\xffb\"", ErrBadUTF8},
		{"\"a\\\rb\"", ErrBadEscape},
	}
	for _, tt := range tests {
		if _, err := Quoted([]byte(tt.in)); !errors.Is(err, tt.e) {
			t.Errorf("Quoted(%q) = %v want %v", tt.in, err, tt.e)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`'abc'`, "abc"},
		{`"a\tb\nc"`, "a\tb\nc"},
		{`"\b\f\r"`, "\b\f\r"},
		{`"\/"`, "/"},
		{`"\""`, `"`},
		{`'\''`, "'"},
		{`"\\"`, `\`},
		{`"\x41B\U00000043"`, "ABC"},
		{`"€"`, "€"},
		{"\"a\\\nb\"", "ab"},
		{"\"a\\\r\nb\"", "ab"},
		{"\"héllo\"", "héllo"},
	}
	for _, tt := range tests {
		got, err := Unquote([]byte(tt.in))
		if err != nil {
			t.Errorf("Unquote(%q): %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("Unquote(%q) = %q want %q", tt.in, got, tt.out)
		}
	}
}

func TestUnquoteModes(t *testing.T) {
	// surrogates are illegal in text mode
	if _, err := Unquote([]byte(`"\uD800"`)); !errors.Is(err, ErrSurrogate) {
		t.Errorf("got %v want %v", err, ErrSurrogate)
	}
	// beyond the Unicode space, including values that would wrap a
	// 32-bit code point negative
	for _, in := range []string{`"\U00110000"`, `"\U80000000"`, `"\UFFFFFFFF"`} {
		if _, err := Unquote([]byte(in)); !errors.Is(err, ErrBadUnicode) {
			t.Errorf("Unquote(%q) = %v want %v", in, err, ErrBadUnicode)
		}
		if _, err := UnquoteBytes([]byte(in)); !errors.Is(err, ErrByteRange) {
			t.Errorf("UnquoteBytes(%q) = %v want %v", in, err, ErrByteRange)
		}
	}
	// byte mode narrows each code point to one byte
	b, err := UnquoteBytes([]byte(`"\xff\x00a"`))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 3 || b[0] != 0xff || b[1] != 0 || b[2] != 'a' {
		t.Errorf("UnquoteBytes = %v", b)
	}
	if _, err := UnquoteBytes([]byte(`"Ā"`)); !errors.Is(err, ErrByteRange) {
		t.Errorf("got %v want %v", err, ErrByteRange)
	}
	if _, err := UnquoteBytes([]byte(`"€"`)); !errors.Is(err, ErrByteRange) {
		t.Errorf("got %v want %v", err, ErrByteRange)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\tb", `"a\tb"`},
		{"nl\n", `"nl\n"`},
		{`q"q`, `"q\"q"`},
		{`b\s`, `"b\\s"`},
		{"\x01", `"\u0001"`},
		{"héllo", "\"héllo\""},
		{"it's", `"it's"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q) = %q want %q", tt.in, got, tt.out)
		}
	}
}
