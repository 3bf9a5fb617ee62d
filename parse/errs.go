package parse

import (
	"errors"
	"fmt"

	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/tag"
)

var (
	ErrSyntax = errors.New("syntax error")

	// ErrTrailingContent reports non-whitespace input after the
	// root value; the input must contain exactly one value.
	ErrTrailingContent = fmt.Errorf("%w: trailing content", ErrSyntax)

	// ErrNestingTooDeep bounds recursion on adversarial input;
	// see WithMaxDepth.
	ErrNestingTooDeep = errors.New("nesting too deep")

	// Semantic and tag errors surface under the same sentinels
	// the ir and tag packages define.
	ErrDuplicateKey       = ir.ErrDuplicateKey
	ErrDuplicateSetMember = ir.ErrDuplicateSetMember
	ErrReservedTag        = tag.ErrReservedTag
	ErrInvalidEncoding    = tag.ErrInvalidEncoding
)
