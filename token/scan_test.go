package token

import "testing"

func TestWhitespace(t *testing.T) {
	tests := []struct {
		in string
		n  int
	}{
		{"", 0},
		{"x", 0},
		{"  x", 2},
		{" \t\r\n x", 5},
		{"# comment", 9},
		{"# comment\nx", 10},
		{"# a\n# b\nx", 8},
		{"\uFEFFx", 3},
		{" \uFEFF x", 5},
		{"\xef\xbbx", 0},
		{"\xffx", 0},
	}
	for _, tt := range tests {
		if n := Whitespace([]byte(tt.in)); n != tt.n {
			t.Errorf("Whitespace(%q) = %d want %d", tt.in, n, tt.n)
		}
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in string
		n  int
	}{
		{"", 0},
		{"9abc", 0},
		{"abc", 3},
		{"_a1", 3},
		{"Abc9_z", 6},
		{"a.b", 1},
		{"a-b", 1},
		{"true,", 4},
	}
	for _, tt := range tests {
		if n := Identifier([]byte(tt.in)); n != tt.n {
			t.Errorf("Identifier(%q) = %d want %d", tt.in, n, tt.n)
		}
	}
}

func TestTagName(t *testing.T) {
	tests := []struct {
		in   string
		name string
		n    int
	}{
		{"@set [1]", "set", 5},
		{"@a  1", "a", 4},
		{"@my.tag x", "my.tag", 8},
		{"@_x9 1", "_x9", 5},
	}
	for _, tt := range tests {
		name, n, err := TagName([]byte(tt.in))
		if err != nil {
			t.Errorf("TagName(%q): %v", tt.in, err)
			continue
		}
		if name != tt.name || n != tt.n {
			t.Errorf("TagName(%q) = (%q, %d) want (%q, %d)",
				tt.in, name, n, tt.name, tt.n)
		}
	}
	for _, in := range []string{"", "x", "@", "@1a 1", "@.a 1", "@a", "@a\t1", "@a.b"} {
		if _, _, err := TagName([]byte(in)); err == nil {
			t.Errorf("TagName(%q): expected error", in)
		}
	}
}

func TestPosDoc(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\ne"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
	}
	for _, tt := range tests {
		l, c := doc.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = (%d, %d) want (%d, %d)",
				tt.off, l, c, tt.line, tt.col)
		}
	}
}
