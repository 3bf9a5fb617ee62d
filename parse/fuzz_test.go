package parse

import (
	"bytes"
	"testing"

	"github.com/rson-format/go-rson/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`-42`,
		`3.14`,
		`-1.0e10`,
		`0x_bad`,
		`0xff`,
		`0o17`,
		`0b1010`,
		`0x1.8p+1`,
		`1_000`,
		`""`,
		`"hello"`,
		`'single'`,
		`"esc \n \t \x41 A \U0001F600"`,

		// Collections
		`[]`,
		`[1, 2, 3]`,
		`[1,]`,
		`[[nested], [1, [2]]]`,
		`{}`,
		`{"foo": "bar"}`,
		`{"a": 1, "b": 2,}`,
		`{1: "a", 2: "b"}`,
		`{"nested": {"object": null}}`,

		// Tags
		`@set [1, 2, 3]`,
		`@dict {"b": 1, "a": 2}`,
		`@base64 "Zm9v"`,
		`@bytestring "foo"`,
		`@datetime "2017-11-22T23:32:07.100497Z"`,
		`@duration 60`,
		`@complex [1, 2]`,
		`@float "NaN"`,
		`@mytag {"x": [1]}`,
		`@my.tag null`,

		// Comments and whitespace
		"# comment\nvalue",
		"1 # trailing",
		"\uFEFF1",
		"[1,\t2,\r\n3]",

		// Near-miss syntax
		`@a @b 1`,
		`{"a"}`,
		`[1 2]`,
		`"unterminated`,
		`0x`,
		`--1`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// If parse succeeds, the canonical dump must re-parse to the
		// same canonical dump
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			return // app values without a registry cannot encode
		}
		node2, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("canonical text failed to parse: %q: %v", buf.String(), err)
		}
		var buf2 bytes.Buffer
		if err := encode.Encode(node2, &buf2); err != nil {
			t.Fatalf("canonical text failed to encode: %q: %v", buf.String(), err)
		}
		if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
			t.Fatalf("canonicalization not idempotent: %q != %q", buf.String(), buf2.String())
		}
	})
}
