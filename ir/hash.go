package ir

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

// Hash returns a 64-bit hash of the value, consistent with Equal:
// sets and dicts hash in sorted order so insertion order does not
// matter. It panics if n is nil.
func (n *Value) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil value")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

var hashSeed = maphash.MakeSeed()

func (n *Value) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Kind))
	var b [8]byte
	switch n.Kind {
	case NullKind:
	case BoolKind:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntKind:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case FloatKind, DurationKind:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Float64))
		h.Write(b[:])
	case ComplexKind:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(real(n.Complex)))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(imag(n.Complex)))
		h.Write(b[:])
	case StringKind:
		h.WriteString(n.Str)
	case BytesKind:
		h.Write(n.Bytes)
	case TimeKind:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Time.UnixNano()))
		h.Write(b[:])
	case ListKind:
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case SetKind:
		for _, v := range sorted(n.Values) {
			v.hashTo(h)
		}
	case RecordKind:
		for i, f := range n.Fields {
			f.hashTo(h)
			n.Values[i].hashTo(h)
		}
	case DictKind:
		ks, vs := sortedPairs(n)
		for i, k := range ks {
			k.hashTo(h)
			vs[i].hashTo(h)
		}
	case TaggedKind:
		h.WriteString(n.Name)
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case AppKind:
		h.WriteString(n.Name)
		h.WriteString(fmt.Sprint(n.App))
	}
}
