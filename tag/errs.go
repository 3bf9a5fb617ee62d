package tag

import "errors"

var (
	// ErrReservedTag covers both reserved-tag misuse on a value
	// shape the tag does not govern and an application encoder
	// trying to claim a reserved name.
	ErrReservedTag = errors.New("reserved tag misuse")

	// ErrUnknownTag is returned by a strict registry for a tag
	// name with no registered decoder.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrUnknownType is returned when encoding an application
	// value whose type has no registered encoder.
	ErrUnknownType = errors.New("unknown application type")

	// ErrInvalidEncoding covers malformed base64 text, invalid
	// datetime text and invalid float literal text under their
	// reserved tags.
	ErrInvalidEncoding = errors.New("invalid encoding")
)
