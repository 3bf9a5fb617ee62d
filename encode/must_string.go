package encode

import "github.com/rson-format/go-rson/ir"

// MustString returns the canonical text of node, panicking on values
// that cannot encode (application values with no registry).
func MustString(node *ir.Value) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}
