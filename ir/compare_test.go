package ir

import "testing"

func TestCompareNumbers(t *testing.T) {
	cases := []struct {
		name string
		a, b *Value
		want int
	}{
		{"int==uint", FromInt(3), FromUint8(3), 0},
		{"int<uint", FromInt(-1), FromUint(0), -1},
		{"uint>int", FromUint(1), FromInt(-1), 1},
		{"int<int", FromInt8(-2), FromInt(-1), -1},
		{"uint<uint", FromUint16(2), FromUint(3), -1},
		{"float==int", FromFloat64(2), FromInt(2), 0},
		{"float<float", FromFloat32(1.5), FromFloat64(2.5), -1},
		{"big uint", FromUint(1 << 63), FromInt(1), 1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("%s: Compare = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestCompareKindsAndComposites(t *testing.T) {
	if Compare(Null(), FromBool(false)) >= 0 {
		t.Error("Nil should sort before Bool")
	}
	if Compare(FromString("a"), FromInt(1)) <= 0 {
		t.Error("Raw should sort after numbers")
	}
	if Compare(FromString("a"), FromString("b")) >= 0 {
		t.Error("expected a < b")
	}

	a := FromSlice([]*Value{FromInt(1), FromInt(2)})
	b := FromSlice([]*Value{FromInt(1), FromInt(2)})
	if !Equal(a, b) {
		t.Error("expected equal arrays")
	}
	c := FromSlice([]*Value{FromInt(1), FromInt(2), FromInt(3)})
	if Compare(a, c) >= 0 {
		t.Error("shorter array should sort first")
	}

	m1 := FromKeyVals([]KeyVal{{Key: FromString("k"), Val: FromInt(1)}})
	m2 := FromKeyVals([]KeyVal{{Key: FromString("k"), Val: FromInt(2)}})
	if Compare(m1, m2) >= 0 {
		t.Error("expected m1 < m2")
	}
	if !Equal(m1, m1) {
		t.Error("expected map equal to itself")
	}
}
