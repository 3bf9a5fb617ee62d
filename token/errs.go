package token

import "errors"

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode escape")
	ErrSurrogate      = errors.New("surrogate code point")
	ErrByteRange      = errors.New("code point out of byte range")
	ErrUnicodeControl = errors.New("unescaped control character")
	ErrNumber         = errors.New("bad number")
	ErrTagName        = errors.New("bad tag name")
)
