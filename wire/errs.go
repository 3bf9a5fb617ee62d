package wire

import (
	"errors"
	"fmt"

	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/tag"
)

var (
	ErrTruncated      = errors.New("truncated input")
	ErrUnknownType    = errors.New("unknown type byte")
	ErrNestingTooDeep = errors.New("nesting too deep")
	ErrEncoding       = errors.New("encoding error")
	ErrTrailingData   = errors.New("trailing data")

	ErrDuplicateKey       = ir.ErrDuplicateKey
	ErrDuplicateSetMember = ir.ErrDuplicateSetMember
	ErrReservedTag        = tag.ErrReservedTag
)

func errAt(err error, off int) error {
	return fmt.Errorf("%w at offset %d", err, off)
}
