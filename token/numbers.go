package token

import (
	"strconv"
	"strings"
)

// Number returns the length of the numeric literal at the start of d
// and whether it is a float. The literal may carry a leading sign, a
// radix prefix (0b, 0o, 0x) with underscores between digits, a
// decimal fraction with e/E exponent, or a hex fraction with a
// mandatory p/P binary exponent.
func Number(d []byte) (int, bool, error) {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if i >= len(d) || !asciiDigit(d[i]) {
		return 0, false, ErrNumber
	}
	if d[i] == '0' && i+1 < len(d) {
		switch d[i+1] {
		case 'x', 'X':
			n := digitRun(d[i+2:], hexDigit)
			if n == 0 {
				return 0, false, ErrNumber
			}
			j := i + 2 + n
			if f := hexFract(d[j:]); f > 0 {
				return j + f, true, nil
			}
			return j, false, nil
		case 'o', 'O':
			n := digitRun(d[i+2:], octDigit)
			if n == 0 {
				return 0, false, ErrNumber
			}
			return i + 2 + n, false, nil
		case 'b', 'B':
			n := digitRun(d[i+2:], binDigit)
			if n == 0 {
				return 0, false, ErrNumber
			}
			return i + 2 + n, false, nil
		}
	}
	i += digitRun(d[i:], asciiDigit)
	if f := fract(d[i:]); f > 0 {
		return i + f, true, nil
	}
	return i, false, nil
}

// digitRun returns the length of a run of digits with underscores
// allowed only between digits.
func digitRun(d []byte, digit func(byte) bool) int {
	if len(d) == 0 || !digit(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) {
		if digit(d[i]) {
			i++
			continue
		}
		if d[i] == '_' && i+1 < len(d) && digit(d[i+1]) {
			i += 2
			continue
		}
		break
	}
	return i
}

// fract matches a decimal fractional part with optional exponent:
// "." digits [eE [+-] digits].
func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := digitRun(d[1:], asciiDigit)
	if n == 0 {
		return 0
	}
	i := 1 + n
	return i + exp(d[i:], 'e', 'E')
}

// hexFract matches a hexadecimal fractional part with mandatory
// binary exponent: "." hexdigits pP [+-] digits.
func hexFract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := digitRun(d[1:], hexDigit)
	if n == 0 {
		return 0
	}
	i := 1 + n
	e := exp(d[i:], 'p', 'P')
	if e == 0 {
		// without the exponent this is not a hex float
		return 0
	}
	return i + e
}

func exp(d []byte, lo, up byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != lo && d[0] != up {
		return 0
	}
	i := 1
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	n := digitRun(d[i:], asciiDigit)
	if n == 0 {
		return 0
	}
	return i + n
}

func hexDigit(c byte) bool {
	return asciiDigit(c) ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func octDigit(c byte) bool { return '0' <= c && c <= '7' }
func binDigit(c byte) bool { return c == '0' || c == '1' }

// ParseInt converts a scanned integer literal, handling sign, radix
// prefix and underscore separators.
func ParseInt(lit string) (int64, error) {
	s := strings.ReplaceAll(lit, "_", "")
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	}
	if neg {
		s = "-" + s
	}
	return strconv.ParseInt(s, base, 64)
}

// ParseFloat converts a scanned float literal, decimal or hex,
// stripping underscore separators.
func ParseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
}
