package ir

import (
	"errors"
	"testing"
	"time"
)

func TestNewSet(t *testing.T) {
	s, err := NewSet([]*Value{FromInt(1), FromInt(2)})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has(FromInt(2)) {
		t.Error("missing member")
	}
	if s.Has(FromInt(3)) {
		t.Error("phantom member")
	}
	_, err = NewSet([]*Value{FromInt(1), FromInt(1)})
	if !errors.Is(err, ErrDuplicateSetMember) {
		t.Errorf("got %v want %v", err, ErrDuplicateSetMember)
	}
	// 1 and 1.0 are different kinds, so both fit in one set
	if _, err := NewSet([]*Value{FromInt(1), FromFloat(1)}); err != nil {
		t.Errorf("int and float should not collide: %v", err)
	}
}

func TestFromMapRecordSorted(t *testing.T) {
	rec := FromMapRecord(map[string]*Value{
		"c": FromInt(3), "a": FromInt(1), "b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	for i, f := range rec.Fields {
		if f.Str != want[i] {
			t.Errorf("field %d = %q want %q", i, f.Str, want[i])
		}
	}
	if Get(rec, "b").Int64 != 2 {
		t.Error("Get(b)")
	}
	if Get(rec, "zz") != nil {
		t.Error("Get(zz) should be nil")
	}
}

func TestFromTimeNormalizes(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	v := FromTime(time.Date(2020, 1, 2, 3, 4, 5, 123456789, loc))
	if v.Time.Location() != time.UTC {
		t.Error("not UTC")
	}
	if v.Time.Nanosecond() != 123456000 {
		t.Errorf("nanoseconds not truncated to microseconds: %d", v.Time.Nanosecond())
	}
}

func TestDuration(t *testing.T) {
	v := FromDuration(1500 * time.Millisecond)
	if v.Float64 != 1.5 {
		t.Errorf("seconds = %v", v.Float64)
	}
	if v.Duration() != 1500*time.Millisecond {
		t.Errorf("Duration() = %v", v.Duration())
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Value{FromInt(1)})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone differs")
	}
	cp.Values[0].Values[0] = FromInt(2)
	if Equal(orig, cp) {
		t.Error("clone shares children")
	}
}

func TestVisit(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Value{FromInt(1), FromInt(2)})},
	})
	pre, post := 0, 0
	err := node.Visit(func(y *Value, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// record, key, list, two ints
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d want 5", pre, post)
	}
}
