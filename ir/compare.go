package ir

import (
	"bytes"
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values under a
// deterministic total order. The result is 0 if a == b, -1 if a < b,
// and +1 if a > b.
//
// The order sorts first by kind rank, then by payload within a kind.
// It drives dict key sorting, set ordering and the duplicate checks
// in the parser. Sets and dicts compare as unordered collections:
// two dicts with the same pairs are equal regardless of the order
// the pairs were inserted.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntKind:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatKind, DurationKind:
		// cmp.Compare orders NaN before all other values and
		// equal to itself, keeping the order total
		return cmp.Compare(a.Float64, b.Float64)
	case ComplexKind:
		if c := cmp.Compare(real(a.Complex), real(b.Complex)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a.Complex), imag(b.Complex))
	case StringKind:
		return strings.Compare(a.Str, b.Str)
	case BytesKind:
		return bytes.Compare(a.Bytes, b.Bytes)
	case TimeKind:
		return a.Time.Compare(b.Time)
	case ListKind:
		return compareSlices(a.Values, b.Values)
	case SetKind:
		return compareSlices(sorted(a.Values), sorted(b.Values))
	case RecordKind:
		return comparePairs(a.Fields, a.Values, b.Fields, b.Values)
	case DictKind:
		ak, av := sortedPairs(a)
		bk, bv := sortedPairs(b)
		return comparePairs(ak, av, bk, bv)
	case TaggedKind, AppKind:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if a.Kind == TaggedKind {
			return compareSlices(a.Values, b.Values)
		}
		if reflect.DeepEqual(a.App, b.App) {
			return 0
		}
		return strings.Compare(fmt.Sprint(a.App), fmt.Sprint(b.App))
	}
	return 0
}

// Equal reports whether a and b are the same value. NaN equals NaN
// here; callers needing IEEE semantics compare canonical dumps
// instead.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case IntKind:
		return 2
	case FloatKind:
		return 3
	case ComplexKind:
		return 4
	case DurationKind:
		return 5
	case TimeKind:
		return 6
	case StringKind:
		return 7
	case BytesKind:
		return 8
	case ListKind:
		return 9
	case SetKind:
		return 10
	case RecordKind:
		return 11
	case DictKind:
		return 12
	case TaggedKind:
		return 13
	case AppKind:
		return 14
	}
	return 100
}

func compareSlices(a, b []*Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func comparePairs(ak, av, bk, bv []*Value) int {
	n := min(len(ak), len(bk))
	for i := 0; i < n; i++ {
		if c := Compare(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := Compare(av[i], bv[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ak), len(bk))
}

func sorted(vs []*Value) []*Value {
	res := slices.Clone(vs)
	slices.SortFunc(res, Compare)
	return res
}

// sortedPairs returns the keys and values of a Record or Dict with
// pairs ordered by key. The dict encoder uses the same order.
func sortedPairs(y *Value) ([]*Value, []*Value) {
	idx := make([]int, len(y.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		return Compare(y.Fields[a], y.Fields[b])
	})
	ks := make([]*Value, len(idx))
	vs := make([]*Value, len(idx))
	for i, j := range idx {
		ks[i] = y.Fields[j]
		vs[i] = y.Values[j]
	}
	return ks, vs
}

// SortedPairs exposes the dict serialization order.
func SortedPairs(y *Value) ([]*Value, []*Value) {
	return sortedPairs(y)
}

// SortedValues exposes the set serialization order.
func SortedValues(y *Value) []*Value {
	return sorted(y.Values)
}
