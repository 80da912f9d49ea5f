package ir

import (
	"errors"
	"testing"
)

func TestCheckedAccessors(t *testing.T) {
	b, err := FromBool(true).Bool()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b {
		t.Error("expected true")
	}

	i, err := FromInt(-5).Int()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != -5 {
		t.Errorf("expected -5, got %d", i)
	}

	u, err := FromUint16(300).Uint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != 300 {
		t.Errorf("expected 300, got %d", u)
	}

	f, err := FromFloat32(1.5).Float32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 1.5 {
		t.Errorf("expected 1.5, got %v", f)
	}

	s, err := FromString("hi").Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "hi" {
		t.Errorf("expected %q, got %q", "hi", s)
	}
}

func TestTypeMismatch(t *testing.T) {
	v := FromInt(42)
	_, err := v.Bool()
	if err == nil {
		t.Fatal("expected error")
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TypeError, got %T", err)
	}
	if te.Want != BoolKind || te.Got != Int64Kind {
		t.Errorf("unexpected Want/Got: %s/%s", te.Want, te.Got)
	}

	// the value is unchanged by the failed access
	if v.Kind() != Int64Kind {
		t.Errorf("kind changed to %s", v.Kind())
	}
	i, err := v.Int()
	if err != nil || i != 42 {
		t.Errorf("value changed: %d, %v", i, err)
	}
}

func TestAccessorKindFamilies(t *testing.T) {
	if _, err := FromUint(1).Int(); err == nil {
		t.Error("Int() on a Uint64 should fail")
	}
	if _, err := FromInt(1).Uint(); err == nil {
		t.Error("Uint() on an Int64 should fail")
	}
	if _, err := FromFloat64(1).Float32(); err == nil {
		t.Error("Float32() on a Float64 should fail")
	}
	if _, err := FromInt8(1).Int(); err != nil {
		t.Errorf("Int() on an Int8 should succeed: %v", err)
	}
	if _, err := FromUint8(1).Uint(); err != nil {
		t.Errorf("Uint() on a Uint8 should succeed: %v", err)
	}
}

func TestMapOrderAndGet(t *testing.T) {
	m := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromInt(2)},
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(3)},
	})
	kvs, err := m.Map()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kvs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(kvs))
	}
	keys := []string{"b", "a", "b"}
	for i, kv := range kvs {
		got, _ := kv.Key.Text()
		if got != keys[i] {
			t.Errorf("entry %d: expected key %q, got %q", i, keys[i], got)
		}
	}
	// Get returns the first entry for a duplicated key
	v := Get(m, "b")
	if v == nil {
		t.Fatal("expected value for b")
	}
	if i, _ := v.Int(); i != 2 {
		t.Errorf("expected first b entry (2), got %d", i)
	}
	if Get(m, "missing") != nil {
		t.Error("expected nil for missing key")
	}
}

func TestVisit(t *testing.T) {
	v := FromSlice([]*Value{
		FromInt(1),
		FromKeyVals([]KeyVal{{Key: FromString("k"), Val: FromInt(2)}}),
	})
	var pre, post int
	err := v.Visit(func(v *Value, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// array, 1, map, k, 2
	if pre != 5 || post != 5 {
		t.Errorf("expected 5 pre and post visits, got %d/%d", pre, post)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != k {
			t.Errorf("round trip %s gave %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Bogus")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}
