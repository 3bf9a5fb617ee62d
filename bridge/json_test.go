package bridge

import (
	"errors"
	"testing"

	"github.com/rson-format/go-rson/encode"
	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/parse"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestToJSON(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`42`, `42`},
		{`-0x10`, `-16`},
		{`1.5`, `1.5`},
		{`5`, `5`},
		{`@float 5`, `5.0`},
		{`1.0e30`, `1.0e+30`},
		{`"hi"`, `"hi"`},
		{`@float "NaN"`, `{"float":"NaN"}`},
		{`@float "+Inf"`, `{"float":"+Inf"}`},
		{`[1, "a"]`, `{"list":[1,"a"]}`},
		{`@set [2, 1]`, `{"set":[1,2]}`},
		{`{"b": 2, "a": 1}`, `{"record":{"b":2,"a":1}}`},
		{`@dict {"b": 2, "a": 1}`, `{"dict":{"a":1,"b":2}}`},
		{`@base64 "aGk="`, `{"base64":"aGk="}`},
		{`@complex [1, 2.5]`, `{"complex":[1.0,2.5]}`},
		{`@datetime "2017-11-22T23:32:07.1Z"`, `{"datetime":"2017-11-22T23:32:07.100000Z"}`},
		{`@duration 90`, `{"duration":90.0}`},
		{`@mytag [1]`, `{"mytag":{"list":[1]}}`},
		{`{"a": @set [1]}`, `{"record":{"a":{"set":[1]}}}`},
	}
	for _, tt := range tests {
		d, err := ToJSON(mustParse(t, tt.in))
		if err != nil {
			t.Errorf("ToJSON(%s): %v", tt.in, err)
			continue
		}
		if string(d) != tt.out {
			t.Errorf("ToJSON(%s) = %s want %s", tt.in, d, tt.out)
		}
	}
}

func TestToJSONUnrepresentable(t *testing.T) {
	for _, in := range []string{`{1: "a"}`, `@dict {1: "a"}`, `[{7: null}]`} {
		if _, err := ToJSON(mustParse(t, in)); !errors.Is(err, ErrUnrepresentable) {
			t.Errorf("ToJSON(%s) = %v want %v", in, err, ErrUnrepresentable)
		}
	}
}

// Values round trip through JSON back to their canonical text.
func TestJSONRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`false`,
		`-42`,
		`1.5`,
		`-0.0`,
		`@float "NaN"`,
		`@float "-Inf"`,
		`"héllo"`,
		`@base64 "/wA="`,
		`[1, [2, "x"], null]`,
		`@set [1, 2.5, "a"]`,
		`{"z": 1, "a": {"b": @set [true]}}`,
		`@dict {"a": 1, "b": 2}`,
		`@complex [1.0, -2.0]`,
		`@datetime "2017-11-22T23:32:07.100497Z"`,
		`@duration 1.5`,
		`@mytag {"x": 1}`,
	}
	for _, in := range tests {
		node := mustParse(t, in)
		want := encode.MustString(node)
		d, err := ToJSON(node)
		if err != nil {
			t.Errorf("ToJSON(%s): %v", in, err)
			continue
		}
		back, err := FromJSON(d)
		if err != nil {
			t.Errorf("FromJSON(%s): %v", d, err)
			continue
		}
		if got := encode.MustString(back); got != want {
			t.Errorf("%s: round trip %s != %s", in, got, want)
		}
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		// int and float tokens stay distinct kinds
		{`1`, `1`},
		{`1.0`, `1.0`},
		{`1e2`, `100.0`},
		{`-0.0`, `-0.0`},
		// arrays in value position read leniently as lists
		{`[1, 2]`, `[1, 2]`},
		// object wrapper is the record tag's synonym
		{`{"object": {"a": 1}}`, `{"a": 1}`},
		{`{"table": {"a": 1}}`, `{"a": 1}`},
		{`{"hash": {"b": 2, "a": 1}}`, `@dict {"a": 1, "b": 2}`},
		{`{"record": {}}`, `{}`},
		// a bare single-member object is an opaque tag
		{`{"species": "newt"}`, `@species "newt"`},
	}
	for _, tt := range tests {
		v, err := FromJSON([]byte(tt.in))
		if err != nil {
			t.Errorf("FromJSON(%s): %v", tt.in, err)
			continue
		}
		if got := encode.MustString(v); got != tt.out {
			t.Errorf("FromJSON(%s) = %s want %s", tt.in, got, tt.out)
		}
	}
}

func TestFromJSONRecordOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"record":{"z":1,"a":2,"m":3}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range v.Fields {
		if f.Str != want[i] {
			t.Errorf("field %d = %q want %q", i, f.Str, want[i])
		}
	}
}

func TestFromJSONErrs(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`tru`,
		`1 2`,
		`{}`,
		`{"a": 1, "b": 2}`,
		`{"record": {"a": 1, "a": 2}}`,
		`{"record": [1]}`,
		`{"set": [1, 1]}`,
		`{"set": 3}`,
		`{"base64": "!!"}`,
		`{"datetime": "yesterday-ish Z"}`,
		`{1: 2}`,
	}
	for _, in := range tests {
		if _, err := FromJSON([]byte(in)); !errors.Is(err, ErrJSON) {
			t.Errorf("FromJSON(%s) = %v want %v", in, err, ErrJSON)
		}
	}
}
