package ir

// Value is a node of a decoded or to-be-encoded tree.  Its kind is
// fixed at construction; payload access goes through the checked
// accessors, which fail with a *TypeError on a kind mismatch and
// leave the value untouched.
//
// Arrays and maps own their children.  Trees are built bottom-up, so
// a child is always complete before it is attached and no cycles can
// form.  Map entries keep their insertion order.
type Value struct {
	kind Kind

	b   bool
	i   int64
	u   uint64
	f   float64
	f32 float32
	raw []byte

	keys []*Value
	vals []*Value
}

// KeyVal is one map entry.
type KeyVal struct {
	Key *Value
	Val *Value
}

func (v *Value) Kind() Kind { return v.kind }

// Len returns the byte length of a Raw, the element count of an
// Array, and the pair count of a Map.  It is 0 for other kinds.
func (v *Value) Len() int {
	switch v.kind {
	case RawKind:
		return len(v.raw)
	case ArrayKind, MapKind:
		return len(v.vals)
	default:
		return 0
	}
}

// Checked accessors.

func (v *Value) Bool() (bool, error) {
	if v.kind != BoolKind {
		return false, &TypeError{Want: BoolKind, Got: v.kind}
	}
	return v.b, nil
}

// Int returns the value of any signed integer kind, widened to int64.
func (v *Value) Int() (int64, error) {
	if !v.kind.IsInt() {
		return 0, &TypeError{Want: Int64Kind, Got: v.kind}
	}
	return v.i, nil
}

// Uint returns the value of any unsigned integer kind, widened to uint64.
func (v *Value) Uint() (uint64, error) {
	if !v.kind.IsUint() {
		return 0, &TypeError{Want: Uint64Kind, Got: v.kind}
	}
	return v.u, nil
}

func (v *Value) Float32() (float32, error) {
	if v.kind != Float32Kind {
		return 0, &TypeError{Want: Float32Kind, Got: v.kind}
	}
	return v.f32, nil
}

func (v *Value) Float64() (float64, error) {
	if v.kind != Float64Kind {
		return 0, &TypeError{Want: Float64Kind, Got: v.kind}
	}
	return v.f, nil
}

// Bytes returns the byte payload of a Raw.  The slice is the value's
// own storage, not a copy.
func (v *Value) Bytes() ([]byte, error) {
	if v.kind != RawKind {
		return nil, &TypeError{Want: RawKind, Got: v.kind}
	}
	return v.raw, nil
}

// Text returns the byte payload of a Raw as a string.
func (v *Value) Text() (string, error) {
	if v.kind != RawKind {
		return "", &TypeError{Want: RawKind, Got: v.kind}
	}
	return string(v.raw), nil
}

// Array returns the elements of an Array in order.
func (v *Value) Array() ([]*Value, error) {
	if v.kind != ArrayKind {
		return nil, &TypeError{Want: ArrayKind, Got: v.kind}
	}
	return v.vals, nil
}

// Map returns the entries of a Map in insertion order.
func (v *Value) Map() ([]KeyVal, error) {
	if v.kind != MapKind {
		return nil, &TypeError{Want: MapKind, Got: v.kind}
	}
	kvs := make([]KeyVal, len(v.vals))
	for i := range v.vals {
		kvs[i] = KeyVal{Key: v.keys[i], Val: v.vals[i]}
	}
	return kvs, nil
}

// Constructors.

func Null() *Value {
	return &Value{kind: NilKind}
}

func FromBool(v bool) *Value {
	return &Value{kind: BoolKind, b: v}
}

func FromInt(v int64) *Value {
	return &Value{kind: Int64Kind, i: v}
}

func FromInt8(v int8) *Value {
	return &Value{kind: Int8Kind, i: int64(v)}
}

func FromInt16(v int16) *Value {
	return &Value{kind: Int16Kind, i: int64(v)}
}

func FromInt32(v int32) *Value {
	return &Value{kind: Int32Kind, i: int64(v)}
}

func FromUint(v uint64) *Value {
	return &Value{kind: Uint64Kind, u: v}
}

func FromUint8(v uint8) *Value {
	return &Value{kind: Uint8Kind, u: uint64(v)}
}

func FromUint16(v uint16) *Value {
	return &Value{kind: Uint16Kind, u: uint64(v)}
}

func FromUint32(v uint32) *Value {
	return &Value{kind: Uint32Kind, u: uint64(v)}
}

func FromFloat32(v float32) *Value {
	// f32 keeps the exact payload; the widening into f would quiet a
	// signaling NaN, so f is only consulted for ordering.
	return &Value{kind: Float32Kind, f32: v, f: float64(v)}
}

func FromFloat64(v float64) *Value {
	return &Value{kind: Float64Kind, f: v}
}

func FromRaw(d []byte) *Value {
	return &Value{kind: RawKind, raw: d}
}

func FromString(s string) *Value {
	return &Value{kind: RawKind, raw: []byte(s)}
}

func FromSlice(vs []*Value) *Value {
	res := &Value{kind: ArrayKind}
	res.vals = make([]*Value, len(vs))
	copy(res.vals, vs)
	return res
}

func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{kind: MapKind}
	res.keys = make([]*Value, len(kvs))
	res.vals = make([]*Value, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.keys[i] = kv.Key
		res.vals[i] = kv.Val
	}
	return res
}

// Get looks a map value up by a raw string key.  It returns the first
// entry whose key is a Raw with those bytes, or nil.
func Get(v *Value, field string) *Value {
	if v.kind != MapKind {
		return nil
	}
	for i := range v.keys {
		k := v.keys[i]
		if k.kind == RawKind && string(k.raw) == field {
			return v.vals[i]
		}
	}
	return nil
}

// Visit calls f on v in pre-order (isPost false) and post-order
// (isPost true).  Returning false from the pre-order call skips the
// children.  Map keys are visited before their values.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for i := range v.vals {
			if v.kind == MapKind {
				if err := v.keys[i].Visit(f); err != nil {
					return err
				}
			}
			if err := v.vals[i].Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
