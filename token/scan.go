package token

// Whitespace returns the length of the run of insignificant input at
// the start of d: spaces, tabs, carriage returns, line feeds, byte
// order marks, and #-to-end-of-line comments, consumed as one unit.
func Whitespace(d []byte) int {
	i := 0
	for i < len(d) {
		switch d[i] {
		case ' ', '\t', '\r', '\n':
			i++
		case '#':
			i++
			for i < len(d) && d[i] != '\n' {
				i++
			}
		case 0xEF:
			// U+FEFF is whitespace anywhere, not just at the
			// start of the buffer
			if i+2 < len(d) && d[i+1] == 0xBB && d[i+2] == 0xBF {
				i += 3
				continue
			}
			return i
		default:
			return i
		}
	}
	return i
}

// Identifier returns the length of the bare identifier at the start
// of d: [A-Za-z_][A-Za-z0-9_]*.
func Identifier(d []byte) int {
	if len(d) == 0 || !identStart(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) && identPart(d[i]) {
		i++
	}
	return i
}

// TagName scans an @name tag prefix at the start of d, returning the
// name and the total length consumed including the mandatory
// separating spaces. Tag names match [A-Za-z_][A-Za-z0-9_.]* and must
// be followed by at least one space.
func TagName(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '@' {
		return "", 0, ErrTagName
	}
	if len(d) < 2 || !identStart(d[1]) {
		return "", 0, ErrTagName
	}
	i := 2
	for i < len(d) && (identPart(d[i]) || d[i] == '.') {
		i++
	}
	name := string(d[1:i])
	if i == len(d) || d[i] != ' ' {
		return "", 0, ErrTagName
	}
	for i < len(d) && d[i] == ' ' {
		i++
	}
	return name, i, nil
}

func identStart(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || asciiDigit(c)
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
