package bridge

import (
	"errors"

	"github.com/rson-format/go-rson/tag"
)

var (
	ErrJSON = errors.New("json bridge error")

	// ErrUnrepresentable marks values strict JSON cannot carry, such
	// as integer-keyed records.
	ErrUnrepresentable = errors.New("unrepresentable in json")

	ErrReservedTag = tag.ErrReservedTag
)
