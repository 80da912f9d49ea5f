package ir

import "fmt"

// Kind discriminates the representation of a Value.  It is fixed at
// construction and never changes afterwards.
type Kind int

const (
	NilKind Kind = iota
	BoolKind
	Int8Kind
	Int16Kind
	Int32Kind
	Int64Kind
	Uint8Kind
	Uint16Kind
	Uint32Kind
	Uint64Kind
	Float32Kind
	Float64Kind
	RawKind
	ArrayKind
	MapKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NilKind:     "Nil",
		BoolKind:    "Bool",
		Int8Kind:    "Int8",
		Int16Kind:   "Int16",
		Int32Kind:   "Int32",
		Int64Kind:   "Int64",
		Uint8Kind:   "Uint8",
		Uint16Kind:  "Uint16",
		Uint32Kind:  "Uint32",
		Uint64Kind:  "Uint64",
		Float32Kind: "Float32",
		Float64Kind: "Float64",
		RawKind:     "Raw",
		ArrayKind:   "Array",
		MapKind:     "Map",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Nil":     NilKind,
		"Bool":    BoolKind,
		"Int8":    Int8Kind,
		"Int16":   Int16Kind,
		"Int32":   Int32Kind,
		"Int64":   Int64Kind,
		"Uint8":   Uint8Kind,
		"Uint16":  Uint16Kind,
		"Uint32":  Uint32Kind,
		"Uint64":  Uint64Kind,
		"Float32": Float32Kind,
		"Float64": Float64Kind,
		"Raw":     RawKind,
		"Array":   ArrayKind,
		"Map":     MapKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NilKind,
		BoolKind,
		Int8Kind,
		Int16Kind,
		Int32Kind,
		Int64Kind,
		Uint8Kind,
		Uint16Kind,
		Uint32Kind,
		Uint64Kind,
		Float32Kind,
		Float64Kind,
		RawKind,
		ArrayKind,
		MapKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, MapKind:
		return false
	default:
		return true
	}
}

func (k Kind) IsInt() bool {
	switch k {
	case Int8Kind, Int16Kind, Int32Kind, Int64Kind:
		return true
	default:
		return false
	}
}

func (k Kind) IsUint() bool {
	switch k {
	case Uint8Kind, Uint16Kind, Uint32Kind, Uint64Kind:
		return true
	default:
		return false
	}
}

func (k Kind) IsFloat() bool {
	return k == Float32Kind || k == Float64Kind
}
