package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mpack-format/go-mpack/ir"
)

func TestToIR(t *testing.T) {
	v, err := ToIR(map[string]any{
		"name":  "alice",
		"age":   30,
		"admin": true,
		"tags":  []any{"a", "b"},
		"score": 1.5,
		"extra": nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kvs, err := v.Map()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// keys are sorted for determinism
	want := []string{"admin", "age", "extra", "name", "score", "tags"}
	for i, kv := range kvs {
		got, _ := kv.Key.Text()
		if got != want[i] {
			t.Errorf("key %d = %q, want %q", i, got, want[i])
		}
	}
	if n, _ := ir.Get(v, "age").Int(); n != 30 {
		t.Errorf("age = %d, want 30", n)
	}
	if tags := ir.Get(v, "tags"); tags.Len() != 2 {
		t.Errorf("tags length %d, want 2", tags.Len())
	}
	if ir.Get(v, "extra").Kind() != ir.NilKind {
		t.Error("extra should be Nil")
	}
}

func TestToIRUnsupported(t *testing.T) {
	_, err := ToIR(map[string]any{"ch": make(chan int)})
	if err == nil {
		t.Fatal("expected error")
	}
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MarshalError, got %T", err)
	}
	if me.FieldPath != "ch" {
		t.Errorf("FieldPath = %q, want %q", me.FieldPath, "ch")
	}
}

func TestFromIR(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromBool(true)},
		{Key: ir.FromString("n"), Val: ir.FromInt(-3)},
		{Key: ir.FromString("u"), Val: ir.FromUint8(7)},
		{Key: ir.FromString("f"), Val: ir.FromFloat64(2.5)},
		{Key: ir.FromString("s"), Val: ir.FromString("hi")},
		{Key: ir.FromString("bin"), Val: ir.FromRaw([]byte{0xff, 0xfe})},
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Value{ir.Null(), ir.FromInt(1)})},
	})
	got, err := FromIR(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"b":   true,
		"n":   int64(-3),
		"u":   uint64(7),
		"f":   2.5,
		"s":   "hi",
		"bin": []byte{0xff, 0xfe},
		"a":   []any{nil, int64(1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromIR mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRKeys(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromInt(3), Val: ir.FromString("three")},
		{Key: ir.FromBool(false), Val: ir.FromString("no")},
		{Key: ir.FromString("dup"), Val: ir.FromInt(1)},
		{Key: ir.FromString("dup"), Val: ir.FromInt(2)},
	})
	got, err := FromIR(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := got.(map[string]any)
	if m["3"] != "three" || m["false"] != "no" {
		t.Errorf("key rendering wrong: %v", m)
	}
	// first entry wins for duplicates
	if m["dup"] != int64(1) {
		t.Errorf("dup = %v, want 1", m["dup"])
	}

	bad := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromSlice(nil), Val: ir.Null()},
	})
	if _, err := FromIR(bad); err == nil {
		t.Error("expected error for composite map key")
	}
}

func TestRoundTripNative(t *testing.T) {
	in := map[string]any{
		"users": []any{
			map[string]any{"name": "alice", "age": int64(30)},
			map[string]any{"name": "bob", "age": int64(31)},
		},
		"count": uint64(2),
	}
	v, err := ToIR(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := FromIR(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// ints widen to int64 and come back identical here
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}
