package token

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		isFloat bool
	}{
		{"0", 1, false},
		{"007", 3, false},
		{"-12", 3, false},
		{"+12", 3, false},
		{"1_000_000", 9, false},
		{"0xff", 4, false},
		{"0XFF", 4, false},
		{"0x0_1_2_3", 9, false},
		{"0o0_1_2_3", 9, false},
		{"0b0_1_0_1", 9, false},
		{"1.5", 3, true},
		{"0.0", 3, true},
		{"-0.0", 4, true},
		{"1.5e3", 5, true},
		{"1.5E-3", 6, true},
		{"2.5e+10", 7, true},
		{"0x1.8p+1", 8, true},
		{"0x1.8P-1", 8, true},
		{"-0x1.fp3", 8, true},

		// partial consumption: the literal stops where the grammar
		// does, trailing bytes are someone else's problem
		{"1e14", 1, false},
		{"1.", 1, false},
		{"1._5", 1, false},
		{"1_", 1, false},
		{"1__2", 1, false},
		{"0x1.8", 3, false},
		{"0x1.8p", 3, false},
		{"12abc", 2, false},
	}
	for _, tt := range tests {
		n, isFloat, err := Number([]byte(tt.in))
		if err != nil {
			t.Errorf("Number(%q): %v", tt.in, err)
			continue
		}
		if n != tt.n || isFloat != tt.isFloat {
			t.Errorf("Number(%q) = (%d, %v) want (%d, %v)",
				tt.in, n, isFloat, tt.n, tt.isFloat)
		}
	}
}

func TestNumberErr(t *testing.T) {
	for _, in := range []string{"", "-", "+", "abc", "-x", "0x", "0o8", "0b2", "0o", "0b"} {
		if _, _, err := Number([]byte(in)); err == nil {
			t.Errorf("Number(%q): expected error", in)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in  string
		out int64
	}{
		{"0", 0},
		{"-0", 0},
		{"007", 7},
		{"1_000", 1000},
		{"0x0_1_2_3", 0x123},
		{"0o0_1_2_3", 0o123},
		{"0b0_1_0_1", 5},
		{"-0xff", -255},
		{"+0b11", 3},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.in)
		if err != nil {
			t.Errorf("ParseInt(%q): %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("ParseInt(%q) = %d want %d", tt.in, got, tt.out)
		}
	}
	if _, err := ParseInt("9223372036854775808"); err == nil {
		t.Error("expected overflow error")
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in  string
		out float64
	}{
		{"0.0", 0},
		{"-0.0", math.Copysign(0, -1)},
		{"1.5", 1.5},
		{"1_0.2_5", 10.25},
		{"1.5e3", 1500},
		{"0x1.8p+1", 3},
		{"-0x1.0p-2", -0.25},
	}
	for _, tt := range tests {
		got, err := ParseFloat(tt.in)
		if err != nil {
			t.Errorf("ParseFloat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.out || math.Signbit(got) != math.Signbit(tt.out) {
			t.Errorf("ParseFloat(%q) = %v want %v", tt.in, got, tt.out)
		}
	}
}
