package ir

import "errors"

var (
	// ErrDuplicateSetMember is returned when constructing a set
	// containing two members that compare equal.
	ErrDuplicateSetMember = errors.New("duplicate set member")

	// ErrDuplicateKey is returned when constructing a record or
	// dict with two keys that compare equal.
	ErrDuplicateKey = errors.New("duplicate key")
)
