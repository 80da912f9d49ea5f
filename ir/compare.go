package ir

import (
	"bytes"
	"cmp"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Numeric values compare by magnitude across the integer and float
// kinds, so a Uint8 3 equals an Int64 3.
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

	rankA := rank(a.kind)
	rankB := rank(b.kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch {
	case a.kind == BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case a.kind.IsInt() || a.kind.IsUint() || a.kind.IsFloat():
		return compareNumbers(a, b)
	case a.kind == RawKind:
		return bytes.Compare(a.raw, b.raw)
	case a.kind == ArrayKind:
		return compareArrays(a, b)
	case a.kind == MapKind:
		return compareMaps(a, b)
	}
	// NilKind
	return 0
}

// Equal reports whether a and b represent the same tree under Compare.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Nil < Bool < numbers < Raw < Array < Map
func rank(k Kind) int {
	switch {
	case k == NilKind:
		return 0
	case k == BoolKind:
		return 1
	case k.IsInt(), k.IsUint(), k.IsFloat():
		return 2
	case k == RawKind:
		return 3
	case k == ArrayKind:
		return 4
	default:
		return 5
	}
}

func compareNumbers(a, b *Value) int {
	if a.kind.IsFloat() || b.kind.IsFloat() {
		return cmp.Compare(floatOf(a), floatOf(b))
	}
	switch {
	case a.kind.IsInt() && b.kind.IsInt():
		return cmp.Compare(a.i, b.i)
	case a.kind.IsUint() && b.kind.IsUint():
		return cmp.Compare(a.u, b.u)
	case a.kind.IsInt():
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

func floatOf(v *Value) float64 {
	switch {
	case v.kind.IsInt():
		return float64(v.i)
	case v.kind.IsUint():
		return float64(v.u)
	default:
		return v.f
	}
}

func compareArrays(a, b *Value) int {
	n := min(len(a.vals), len(b.vals))
	for i := 0; i < n; i++ {
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.vals), len(b.vals))
}

func compareMaps(a, b *Value) int {
	n := min(len(a.vals), len(b.vals))
	for i := 0; i < n; i++ {
		if c := Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.vals), len(b.vals))
}
